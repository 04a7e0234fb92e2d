package middleware

import (
	"fmt"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/core/domain"
)

// RBAC admits requests whose account role, set by Auth, is one of roles.
// Anything else fails with domain.ErrForbidden, rendered as 403 by the
// central error handler.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" || !slices.Contains(roles, role) {
				return fmt.Errorf("%w: role %q on %s", domain.ErrForbidden, role, c.Path())
			}
			return next(c)
		}
	}
}
