package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/xlance/connects-service/internal/core/domain"
)

func TestProfileHandler_Me(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(ctx context.Context, uid string) (*domain.UserProfile, error) {
			return &domain.UserProfile{
				UID:         uid,
				DisplayName: "Ana",
				Roles:       []domain.Role{domain.RoleFreelancer},
				Connects:    &domain.ConnectsLedger{Available: 50, TotalEarned: 50},
				Version:     7,
			}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newAuthedContext(http.MethodGet, "/v1/profile", "", "u1")
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["uid"] != "u1" || resp["display_name"] != "Ana" {
		t.Fatalf("unexpected profile: %v", resp)
	}
	if _, leaked := resp["version"]; leaked {
		t.Fatalf("version must not be exposed")
	}
	connects, _ := resp["connects"].(map[string]any)
	if connects["available"] != float64(50) {
		t.Fatalf("unexpected connects: %v", connects)
	}
}

func TestProfileHandler_Me_NotFound(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(ctx context.Context, uid string) (*domain.UserProfile, error) { return nil, nil },
	}
	h := NewProfileHandler(stub)

	c, _ := newAuthedContext(http.MethodGet, "/v1/profile", "", "u1")
	if err := h.Me(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_Directory(t *testing.T) {
	stub := &stubProfileService{
		listFn: func(ctx context.Context, role domain.Role) ([]domain.DirectoryEntry, error) {
			if role != domain.RoleClient {
				t.Fatalf("unexpected role %s", role)
			}
			return []domain.DirectoryEntry{
				{ID: "C-001", UID: "a", Role: domain.RoleClient, Seq: 1},
				{ID: "C-002", UID: "b", Role: domain.RoleClient, Seq: 2},
			}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newAuthedContext(http.MethodGet, "/v1/directory/clients", "", "u1")
	c.SetParamNames("role")
	c.SetParamValues("clients")
	if err := h.Directory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp directoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != "clients" || resp.Count != 2 || resp.Entries[1].ID != "C-002" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProfileHandler_Directory_UnknownRole(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newAuthedContext(http.MethodGet, "/v1/directory/agencies", "", "u1")
	c.SetParamNames("role")
	c.SetParamValues("agencies")
	if err := h.Directory(c); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
