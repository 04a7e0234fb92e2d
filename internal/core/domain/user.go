package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is an account held by the identity provider. UID is the opaque
// identity every profile and ledger is keyed by.
type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
