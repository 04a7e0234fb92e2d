package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/xlance/connects-service/internal/core/domain"
)

func TestRBAC(t *testing.T) {
	cases := []struct {
		name    string
		role    any
		allowed []string
		pass    bool
	}{
		{"admin on admin route", domain.RoleAdmin, []string{domain.RoleAdmin}, true},
		{"member on admin route", domain.RoleMember, []string{domain.RoleAdmin}, false},
		{"member on shared route", domain.RoleMember, []string{domain.RoleAdmin, domain.RoleMember}, true},
		{"no role claim", nil, []string{domain.RoleAdmin}, false},
		{"non-string role claim", 7, []string{domain.RoleAdmin}, false},
		{"empty allow list", domain.RoleAdmin, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/admin/connects/u1/add", nil), httptest.NewRecorder())
			if tc.role != nil {
				c.Set(CtxRole, tc.role)
			}

			called := false
			err := RBAC(tc.allowed...)(func(echo.Context) error {
				called = true
				return nil
			})(c)

			if called != tc.pass {
				t.Fatalf("next called = %v, want %v", called, tc.pass)
			}
			if tc.pass && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.pass && !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}
