package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/api/middleware"
)

// ctxUID returns the uid injected by the Auth middleware. Its absence means
// the route was mounted without Auth; reject with 401 before any service call.
func ctxUID(c echo.Context) (string, error) {
	uid, _ := c.Get(middleware.CtxUID).(string)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return uid, nil
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
