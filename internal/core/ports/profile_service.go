package ports

import (
	"context"

	"github.com/xlance/connects-service/internal/core/domain"
)

// Identity is what the identity provider knows about a user at sign-in.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// ProfileProvisioner creates the profile of a freshly registered identity.
type ProfileProvisioner interface {
	EnsureProfile(ctx context.Context, id Identity) (*domain.UserProfile, error)
}

// ProfileService exposes profile reads and provisioning.
type ProfileService interface {
	ProfileProvisioner
	// GetUserProfile returns nil without error when uid has no profile.
	GetUserProfile(ctx context.Context, uid string) (*domain.UserProfile, error)
	ListDirectory(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error)
}
