package ports

import (
	"context"

	"github.com/xlance/connects-service/internal/core/domain"
)

// OnboardingInput is the profile data submitted at the end of onboarding.
type OnboardingInput struct {
	UID        string
	Roles      []domain.Role
	Freelancer *domain.FreelancerDetails // used when Roles contains freelancer
	Client     *domain.ClientDetails     // used when Roles contains client
}

// OnboardingResult describes the profile after onboarding.
type OnboardingResult struct {
	Profile *domain.UserProfile
	// Assigned lists the directory ids issued by this call; empty on replay.
	Assigned []string
	// AlreadyCompleted is true when the profile had finished onboarding before.
	AlreadyCompleted bool
}

// OnboardingService finalizes profiles and assigns directory ids.
type OnboardingService interface {
	CompleteOnboarding(ctx context.Context, in OnboardingInput) (*OnboardingResult, error)
}
