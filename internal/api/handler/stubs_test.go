package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/api/middleware"
	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

type stubLedgerService struct {
	deductFn  func(ctx context.Context, in ports.MutationInput) (*ports.MutationResult, error)
	addFn     func(ctx context.Context, in ports.MutationInput) (*ports.MutationResult, error)
	balanceFn func(ctx context.Context, uid string) (int64, error)
}

func (s *stubLedgerService) Deduct(ctx context.Context, in ports.MutationInput) (*ports.MutationResult, error) {
	return s.deductFn(ctx, in)
}

func (s *stubLedgerService) Add(ctx context.Context, in ports.MutationInput) (*ports.MutationResult, error) {
	return s.addFn(ctx, in)
}

func (s *stubLedgerService) GetBalance(ctx context.Context, uid string) (int64, error) {
	return s.balanceFn(ctx, uid)
}

func (s *stubLedgerService) ProposalCost(budget int64) int64 {
	return domain.ProposalCost(budget)
}

type stubOnboardingService struct {
	completeFn func(ctx context.Context, in ports.OnboardingInput) (*ports.OnboardingResult, error)
}

func (s *stubOnboardingService) CompleteOnboarding(ctx context.Context, in ports.OnboardingInput) (*ports.OnboardingResult, error) {
	return s.completeFn(ctx, in)
}

type stubProfileService struct {
	getFn  func(ctx context.Context, uid string) (*domain.UserProfile, error)
	listFn func(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error)
}

func (s *stubProfileService) EnsureProfile(context.Context, ports.Identity) (*domain.UserProfile, error) {
	return nil, nil
}

func (s *stubProfileService) GetUserProfile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	return s.getFn(ctx, uid)
}

func (s *stubProfileService) ListDirectory(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error) {
	return s.listFn(ctx, role)
}

// newAuthedContext builds a context as if the Auth middleware had accepted uid.
func newAuthedContext(method, target, body, uid string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set(middleware.CtxUID, uid)
	}
	return c, rec
}
