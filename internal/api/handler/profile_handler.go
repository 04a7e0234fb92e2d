package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

// ProfileHandler serves profile and directory reads.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me handles GET /v1/profile.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	p, err := h.service.GetUserProfile(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProfileNotFound
	}
	return c.JSON(http.StatusOK, toProfileResponse(p))
}

// Directory handles GET /v1/directory/:role.
//
// @Summary      List a public directory
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "freelancers or clients"
// @Success      200   {object}  directoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/directory/{role} [get]
func (h *ProfileHandler) Directory(c echo.Context) error {
	role, err := domain.RoleFromDirectory(c.Param("role"))
	if err != nil {
		return err
	}

	entries, err := h.service.ListDirectory(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDirectoryResponse(role, entries))
}
