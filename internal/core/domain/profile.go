package domain

import (
	"strings"
	"time"
)

// Role is a marketplace role chosen during onboarding.
type Role string

const (
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleFreelancer || r == RoleClient
}

// Prefix is the leading letter of directory ids for the role.
func (r Role) Prefix() string {
	if r == RoleClient {
		return "C"
	}
	return "F"
}

// DirectoryName is the plural name used in paths and collections.
func (r Role) DirectoryName() string {
	if r == RoleClient {
		return "clients"
	}
	return "freelancers"
}

// RoleFromDirectory maps "freelancers"/"clients" (or the singular form) to a Role.
func RoleFromDirectory(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "freelancers", "freelancer":
		return RoleFreelancer, nil
	case "clients", "client":
		return RoleClient, nil
	}
	return "", ErrInvalidRole
}

// NormalizeRoles validates roles and removes duplicates, keeping freelancer
// before client so both tracks are always assigned in the same order.
func NormalizeRoles(roles []Role) ([]Role, error) {
	if len(roles) == 0 {
		return nil, ErrInvalidRole
	}
	var hasF, hasC bool
	for _, r := range roles {
		switch r {
		case RoleFreelancer:
			hasF = true
		case RoleClient:
			hasC = true
		default:
			return nil, ErrInvalidRole
		}
	}
	out := make([]Role, 0, 2)
	if hasF {
		out = append(out, RoleFreelancer)
	}
	if hasC {
		out = append(out, RoleClient)
	}
	return out, nil
}

// FreelancerDetails are collected when the freelancer role is chosen.
type FreelancerDetails struct {
	Headline        string   `json:"headline" bson:"headline"`
	Skills          []string `json:"skills" bson:"skills"`
	YearsExperience int      `json:"years_experience" bson:"years_experience"`
}

func (d *FreelancerDetails) Clone() *FreelancerDetails {
	if d == nil {
		return nil
	}
	c := *d
	c.Skills = append([]string(nil), d.Skills...)
	return &c
}

// ClientDetails are collected when the client role is chosen.
type ClientDetails struct {
	CompanyType string `json:"company_type" bson:"company_type"`
	CompanyName string `json:"company_name" bson:"company_name"`
	HiringNeeds string `json:"hiring_needs" bson:"hiring_needs"`
}

func (d *ClientDetails) Clone() *ClientDetails {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// UserProfile is the marketplace profile owned by a uid.
type UserProfile struct {
	UID                 string             `json:"uid" bson:"_id"`
	Email               string             `json:"email" bson:"email"`
	DisplayName         string             `json:"display_name" bson:"display_name"`
	PhotoURL            string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Roles               []Role             `json:"roles" bson:"roles"`
	OnboardingCompleted bool               `json:"onboarding_completed" bson:"onboarding_completed"`
	FreelancerID        string             `json:"freelancer_id,omitempty" bson:"freelancer_id,omitempty"`
	ClientID            string             `json:"client_id,omitempty" bson:"client_id,omitempty"`
	FreelancerProfile   *FreelancerDetails `json:"freelancer_profile,omitempty" bson:"freelancer_profile,omitempty"`
	ClientProfile       *ClientDetails     `json:"client_profile,omitempty" bson:"client_profile,omitempty"`
	Connects            *ConnectsLedger    `json:"connects,omitempty" bson:"connects,omitempty"`
	// Version is the optimistic concurrency token maintained by the store.
	Version   int64     `json:"-" bson:"version"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// DirectoryID returns the id assigned for role, if any.
func (p *UserProfile) DirectoryID(role Role) string {
	if role == RoleClient {
		return p.ClientID
	}
	return p.FreelancerID
}

// AssignDirectoryID records id on the role track. A track that already holds
// an id is never overwritten.
func (p *UserProfile) AssignDirectoryID(role Role, id string) bool {
	if p.DirectoryID(role) != "" {
		return false
	}
	if role == RoleClient {
		p.ClientID = id
	} else {
		p.FreelancerID = id
	}
	return true
}

// HasRole reports whether the profile holds role.
func (p *UserProfile) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Balance returns the available connects, zero when there is no ledger.
func (p *UserProfile) Balance() int64 {
	if p == nil || p.Connects == nil {
		return 0
	}
	return p.Connects.Available
}

// Clone returns a deep copy of the profile.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.Roles = append(make([]Role, 0, len(p.Roles)), p.Roles...)
	c.FreelancerProfile = p.FreelancerProfile.Clone()
	c.ClientProfile = p.ClientProfile.Clone()
	c.Connects = p.Connects.Clone()
	return &c
}
