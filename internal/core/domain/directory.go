package domain

import (
	"fmt"
	"time"
)

// DirectoryCounter holds the last sequence number issued per directory.
type DirectoryCounter struct {
	FreelancerCount int64 `json:"freelancerCount" bson:"freelancerCount"`
	ClientCount     int64 `json:"clientCount" bson:"clientCount"`
}

// Count returns the counter value for role.
func (c DirectoryCounter) Count(role Role) int64 {
	if role == RoleClient {
		return c.ClientCount
	}
	return c.FreelancerCount
}

// DirectoryEntry is the public, denormalized snapshot of a profile taken when
// its directory id was assigned.
type DirectoryEntry struct {
	ID          string             `json:"id" bson:"_id"`
	UID         string             `json:"uid" bson:"uid"`
	Role        Role               `json:"role" bson:"role"`
	Seq         int64              `json:"seq" bson:"seq"`
	DisplayName string             `json:"display_name" bson:"display_name"`
	Email       string             `json:"email" bson:"email"`
	PhotoURL    string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Freelancer  *FreelancerDetails `json:"freelancer,omitempty" bson:"freelancer,omitempty"`
	Client      *ClientDetails     `json:"client,omitempty" bson:"client,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// FormatDirectoryID renders the public id for the n-th member of a directory,
// e.g. F-001. Numbers past 999 keep every digit.
func FormatDirectoryID(role Role, n int64) string {
	return fmt.Sprintf("%s-%03d", role.Prefix(), n)
}

// NewDirectoryEntry snapshots the public fields of p for role.
func NewDirectoryEntry(p *UserProfile, role Role, seq int64, at time.Time) *DirectoryEntry {
	e := &DirectoryEntry{
		ID:          FormatDirectoryID(role, seq),
		UID:         p.UID,
		Role:        role,
		Seq:         seq,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   at,
	}
	switch role {
	case RoleFreelancer:
		e.Freelancer = p.FreelancerProfile.Clone()
	case RoleClient:
		e.Client = p.ClientProfile.Clone()
	}
	return e
}
