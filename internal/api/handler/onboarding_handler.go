package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

// OnboardingHandler handles the end of the onboarding flow.
type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(service ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// Complete handles POST /v1/onboarding.
//
// @Summary      Complete onboarding
// @Description  Saves the chosen roles and assigns the next F-NNN / C-NNN directory ids.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      onboardingRequest  true  "Roles and role details"
// @Success      200   {object}  onboardingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/onboarding [post]
func (h *OnboardingHandler) Complete(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	var req onboardingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := requireRoleDetails(req); err != nil {
		return err
	}

	res, err := h.service.CompleteOnboarding(c.Request().Context(), toOnboardingInput(uid, req))
	if err != nil {
		return err
	}

	assigned := res.Assigned
	if assigned == nil {
		assigned = []string{}
	}
	return c.JSON(http.StatusOK, onboardingResponse{
		Profile:          toProfileResponse(res.Profile),
		Assigned:         assigned,
		AlreadyCompleted: res.AlreadyCompleted,
	})
}

// requireRoleDetails checks that every chosen role came with its details.
func requireRoleDetails(req onboardingRequest) error {
	for _, r := range req.Roles {
		switch domain.Role(r) {
		case domain.RoleFreelancer:
			if req.Freelancer == nil {
				return echo.NewHTTPError(http.StatusBadRequest, "freelancer details are required")
			}
		case domain.RoleClient:
			if req.Client == nil {
				return echo.NewHTTPError(http.StatusBadRequest, "client details are required")
			}
		}
	}
	return nil
}
