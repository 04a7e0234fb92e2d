package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/service"
	"github.com/xlance/connects-service/internal/infrastructure/db/memory"
)

const (
	testSecret     = "test-secret"
	testAdminEmail = "root@example.com"
)

type memAccounts struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *memAccounts) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	c := *u
	r.users[u.Email] = &c
	return u, nil
}

func (r *memAccounts) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	store := memory.New(memory.WithMaxAttempts(1000))
	log := zerolog.Nop()
	profiles := service.NewProfileService(store, 50, log)

	return NewRouter(Dependencies{
		Auth:       service.NewAuthService(&memAccounts{users: map[string]*domain.User{}}, profiles, testSecret, time.Hour, []string{testAdminEmail}, log),
		Ledger:     service.NewLedgerService(store, nil, log),
		Onboarding: service.NewOnboardingService(store, log),
		Profiles:   profiles,
		JWTSecret:  testSecret,
		Log:        log,
		Registerer: prometheus.NewRegistry(),
	})
}

func do(t *testing.T, e *echo.Echo, method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func signUp(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	return signUpWith(t, e, email, `{"email":"`+email+`","password":"pw123456","display_name":"Test"}`)
}

func signUpWith(t *testing.T, e *echo.Echo, email, body string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_ConnectsFlow(t *testing.T) {
	e := newTestServer(t)
	token := signUp(t, e, "ana@example.com")

	rec := do(t, e, http.MethodGet, "/v1/connects/balance", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":50}`, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/v1/connects/deduct", token, `{"amount":4,"reason":"Proposal"}`, "Idempotency-Key", "k1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/v1/connects/deduct", token, `{"amount":4,"reason":"Proposal"}`, "Idempotency-Key", "k1")
	require.Equal(t, http.StatusOK, rec.Code)
	var replay struct {
		Available int64 `json:"available"`
		Replayed  bool  `json:"replayed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replay))
	assert.True(t, replay.Replayed)
	assert.Equal(t, int64(46), replay.Available)

	rec = do(t, e, http.MethodPost, "/v1/connects/deduct", token, `{"amount":9,"reason":"Proposal"}`, "Idempotency-Key", "k1")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/v1/connects/deduct", token, `{"amount":100,"reason":"Proposal"}`)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	rec = do(t, e, http.MethodGet, "/v1/profile", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile struct {
		Connects struct {
			Available int64 `json:"available"`
			History   []struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"history"`
		} `json:"connects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, int64(46), profile.Connects.Available)
	require.Len(t, profile.Connects.History, 2)
	assert.Equal(t, domain.StarterPackReason, profile.Connects.History[0].Reason)
	assert.Equal(t, "spent", profile.Connects.History[1].Type)
}

func TestRouter_OnboardingAndDirectory(t *testing.T) {
	e := newTestServer(t)
	tokens := []string{
		signUp(t, e, "a@example.com"),
		signUp(t, e, "b@example.com"),
	}

	for i, token := range tokens {
		rec := do(t, e, http.MethodPost, "/v1/onboarding", token,
			`{"roles":["freelancer"],"freelancer":{"headline":"Dev","skills":["go"],"years_experience":2}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Assigned []string `json:"assigned"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{domain.FormatDirectoryID(domain.RoleFreelancer, int64(i+1))}, resp.Assigned)
	}

	rec := do(t, e, http.MethodGet, "/v1/directory/freelancers", tokens[0], "")
	require.Equal(t, http.StatusOK, rec.Code)
	var dir struct {
		Count   int `json:"count"`
		Entries []struct {
			ID string `json:"id"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dir))
	require.Equal(t, 2, dir.Count)
	assert.Equal(t, "F-001", dir.Entries[0].ID)
	assert.Equal(t, "F-002", dir.Entries[1].ID)

	rec = do(t, e, http.MethodGet, "/v1/directory/agencies", tokens[0], "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AdminAdd(t *testing.T) {
	e := newTestServer(t)
	member := signUp(t, e, "m@example.com")
	admin := signUp(t, e, testAdminEmail)

	rec := do(t, e, http.MethodPost, "/v1/admin/connects/someone/add", member, `{"amount":5,"reason":"Refill"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, e, http.MethodPost, "/v1/admin/connects/missing-uid/add", admin, `{"amount":5,"reason":"Refill"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SelfRegisteredAdminIsForbidden(t *testing.T) {
	e := newTestServer(t)
	token := signUpWith(t, e, "mallory@example.com",
		`{"email":"mallory@example.com","password":"pw123456","role":"admin"}`)

	rec := do(t, e, http.MethodGet, "/v1/profile", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		UID string `json:"uid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))

	rec = do(t, e, http.MethodPost, "/v1/admin/connects/"+me.UID+"/add", token, `{"amount":1000000,"reason":"Refill"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, e, http.MethodGet, "/v1/connects/balance", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":50}`, rec.Body.String())
}

func TestRouter_RequiresToken(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/v1/profile", "/v1/connects/balance", "/v1/directory/clients"} {
		rec := do(t, e, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := do(t, e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
