package domain

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDirectoryID(t *testing.T) {
	cases := []struct {
		role Role
		n    int64
		want string
	}{
		{RoleFreelancer, 1, "F-001"},
		{RoleFreelancer, 42, "F-042"},
		{RoleClient, 999, "C-999"},
		{RoleClient, 1000, "C-1000"},
	}
	for _, tc := range cases {
		if got := FormatDirectoryID(tc.role, tc.n); got != tc.want {
			t.Errorf("FormatDirectoryID(%s, %d) = %q, want %q", tc.role, tc.n, got, tc.want)
		}
	}
}

func TestNormalizeRoles(t *testing.T) {
	got, err := NormalizeRoles([]Role{RoleClient, RoleFreelancer, RoleClient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != RoleFreelancer || got[1] != RoleClient {
		t.Errorf("unexpected roles: %v", got)
	}

	if _, err := NormalizeRoles(nil); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole for empty roles, got %v", err)
	}
	if _, err := NormalizeRoles([]Role{"admin"}); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}

func TestRoleFromDirectory(t *testing.T) {
	if r, err := RoleFromDirectory("Freelancers"); err != nil || r != RoleFreelancer {
		t.Errorf("freelancers: got %q, %v", r, err)
	}
	if r, err := RoleFromDirectory("client"); err != nil || r != RoleClient {
		t.Errorf("client: got %q, %v", r, err)
	}
	if _, err := RoleFromDirectory("admins"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserProfile_AssignDirectoryIDNeverOverwrites(t *testing.T) {
	p := &UserProfile{UID: "u1"}
	if !p.AssignDirectoryID(RoleFreelancer, "F-001") {
		t.Fatal("first assignment should succeed")
	}
	if p.AssignDirectoryID(RoleFreelancer, "F-002") {
		t.Fatal("second assignment must be refused")
	}
	if p.FreelancerID != "F-001" {
		t.Errorf("freelancer id overwritten: %s", p.FreelancerID)
	}
	if p.ClientID != "" {
		t.Errorf("client track touched: %s", p.ClientID)
	}
}

func TestUserProfile_BalanceWithoutLedger(t *testing.T) {
	var nilProfile *UserProfile
	if nilProfile.Balance() != 0 {
		t.Error("nil profile must report zero balance")
	}
	if (&UserProfile{UID: "u"}).Balance() != 0 {
		t.Error("profile without ledger must report zero balance")
	}
}

func TestNewDirectoryEntry_SnapshotsRoleDetails(t *testing.T) {
	p := &UserProfile{
		UID:               "u1",
		DisplayName:       "Ada",
		Email:             "ada@example.com",
		FreelancerProfile: &FreelancerDetails{Headline: "Go dev", Skills: []string{"go"}},
		ClientProfile:     &ClientDetails{CompanyName: "Acme"},
	}
	at := time.Now().UTC()

	f := NewDirectoryEntry(p, RoleFreelancer, 3, at)
	if f.ID != "F-003" || f.Freelancer == nil || f.Client != nil {
		t.Errorf("unexpected freelancer entry: %+v", f)
	}
	p.FreelancerProfile.Skills[0] = "rust"
	if f.Freelancer.Skills[0] != "go" {
		t.Error("directory entry shares skills with profile")
	}

	c := NewDirectoryEntry(p, RoleClient, 7, at)
	if c.ID != "C-007" || c.Client == nil || c.Freelancer != nil {
		t.Errorf("unexpected client entry: %+v", c)
	}
}
