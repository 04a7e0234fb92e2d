package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

// ProfileService provisions and reads profiles and directories.
type ProfileService struct {
	store           ports.ProfileStore
	starterConnects int64
	log             zerolog.Logger
}

var _ ports.ProfileService = (*ProfileService)(nil)

// NewProfileService returns a ProfileService granting starterConnects to every
// new profile. Zero disables the starter pack.
func NewProfileService(store ports.ProfileStore, starterConnects int64, log zerolog.Logger) *ProfileService {
	if starterConnects < 0 {
		starterConnects = 0
	}
	return &ProfileService{store: store, starterConnects: starterConnects, log: log}
}

// EnsureProfile creates the profile for id when it does not exist yet and
// returns the stored profile otherwise. New profiles start with an empty
// directory state and the starter connects pack as their first ledger entry.
func (s *ProfileService) EnsureProfile(ctx context.Context, id ports.Identity) (*domain.UserProfile, error) {
	if id.UID == "" {
		return nil, domain.ErrUserNotFound
	}

	var (
		out     *domain.UserProfile
		created bool
	)
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx ports.ProfileTx) error {
		out, created = nil, false

		p, err := tx.GetProfile(ctx, id.UID)
		if err == nil {
			out = p
			return nil
		}
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return err
		}

		now := time.Now().UTC()
		p = &domain.UserProfile{
			UID:         id.UID,
			Email:       id.Email,
			DisplayName: id.DisplayName,
			PhotoURL:    id.PhotoURL,
			Roles:       []domain.Role{},
			Connects:    &domain.ConnectsLedger{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if s.starterConnects > 0 {
			if _, err := p.Connects.Credit(s.starterConnects, domain.StarterPackReason, "", now); err != nil {
				return err
			}
			p.Connects.LastRefillDate = now
		}
		if err := tx.PutProfile(ctx, p); err != nil {
			return err
		}
		out, created = p, true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	if created {
		s.log.Info().Str("uid", id.UID).Int64("starter_connects", s.starterConnects).Msg("profile created")
	}
	return out, nil
}

// GetUserProfile returns nil, nil when uid has no profile.
func (s *ProfileService) GetUserProfile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	p, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ListDirectory returns the public directory of role ordered by sequence.
func (s *ProfileService) ListDirectory(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	entries, err := s.store.ListDirectory(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", role.DirectoryName(), err)
	}
	return entries, nil
}
