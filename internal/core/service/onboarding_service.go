package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
	"github.com/xlance/connects-service/internal/pkg/metrics"
	"github.com/xlance/connects-service/pkg/logger"
)

// OnboardingService completes onboarding and issues directory ids.
type OnboardingService struct {
	store ports.ProfileStore
	log   zerolog.Logger
}

var _ ports.OnboardingService = (*OnboardingService)(nil)

func NewOnboardingService(store ports.ProfileStore, log zerolog.Logger) *OnboardingService {
	return &OnboardingService{store: store, log: log}
}

// CompleteOnboarding saves the chosen roles and details and, in the same
// transaction, takes the next counter value for every role track that has no
// id yet, creating its directory entry. Either every id and entry is written
// together with the completion flag or nothing is.
//
// A profile that already finished onboarding is returned unchanged.
func (s *OnboardingService) CompleteOnboarding(ctx context.Context, in ports.OnboardingInput) (*ports.OnboardingResult, error) {
	log := logger.For(ctx, s.log)
	roles, err := domain.NormalizeRoles(in.Roles)
	if err != nil {
		return nil, err
	}
	if in.UID == "" {
		return nil, domain.ErrProfileNotFound
	}

	var (
		res      *ports.OnboardingResult
		newRoles []domain.Role
	)
	err = s.store.RunTransaction(ctx, func(ctx context.Context, tx ports.ProfileTx) error {
		res, newRoles = nil, nil

		p, err := tx.GetProfile(ctx, in.UID)
		if err != nil {
			return err
		}
		if p.OnboardingCompleted {
			res = &ports.OnboardingResult{Profile: p, AlreadyCompleted: true}
			return nil
		}

		now := time.Now().UTC()
		p.Roles = roles
		for _, role := range roles {
			switch role {
			case domain.RoleFreelancer:
				if in.Freelancer != nil {
					p.FreelancerProfile = in.Freelancer.Clone()
				}
			case domain.RoleClient:
				if in.Client != nil {
					p.ClientProfile = in.Client.Clone()
				}
			}
		}

		assigned := make([]string, 0, len(roles))
		for _, role := range roles {
			if p.DirectoryID(role) != "" {
				continue
			}
			seq, err := tx.NextDirectorySeq(ctx, role)
			if err != nil {
				return err
			}
			entry := domain.NewDirectoryEntry(p, role, seq, now)
			if err := tx.CreateDirectoryEntry(ctx, entry); err != nil {
				return err
			}
			p.AssignDirectoryID(role, entry.ID)
			assigned = append(assigned, entry.ID)
			newRoles = append(newRoles, role)
		}

		p.OnboardingCompleted = true
		p.UpdatedAt = now
		if err := tx.PutProfile(ctx, p); err != nil {
			return err
		}
		res = &ports.OnboardingResult{Profile: p, Assigned: assigned}
		return nil
	})
	if err != nil {
		metrics.OnboardingCompletionsTotal.WithLabelValues("failed").Inc()
		switch {
		case errors.Is(err, domain.ErrProfileNotFound), errors.Is(err, domain.ErrInvalidRole):
			return nil, err
		case errors.Is(err, domain.ErrStoreUnavailable):
			log.Error().Err(err).Str("uid", in.UID).Msg("onboarding aborted: store unavailable")
			return nil, fmt.Errorf("complete onboarding: %w", err)
		}
		log.Error().Err(err).Str("uid", in.UID).Msg("directory id assignment failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrAssignmentFailed, err)
	}

	if res.AlreadyCompleted {
		metrics.OnboardingCompletionsTotal.WithLabelValues("replayed").Inc()
		log.Info().Str("uid", in.UID).Msg("onboarding already completed")
		return res, nil
	}

	metrics.OnboardingCompletionsTotal.WithLabelValues("completed").Inc()
	for _, role := range newRoles {
		metrics.DirectoryAssignmentsTotal.WithLabelValues(string(role)).Inc()
	}
	log.Info().
		Str("uid", in.UID).
		Strs("assigned", res.Assigned).
		Str("freelancer_id", res.Profile.FreelancerID).
		Str("client_id", res.Profile.ClientID).
		Msg("onboarding completed")
	return res, nil
}
