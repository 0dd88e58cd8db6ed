package usecase

import (
	"context"
	"errors"
	"testing"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/organization"
)

func TestList_CreatesPersonalWorkspace(t *testing.T) {
	r := newMockRepo()
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	out, err := uc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Organizations) != 1 {
		t.Fatalf("len(Organizations) = %d, want 1", len(out.Organizations))
	}
	personal := out.Organizations[0]
	if personal.Name != organization.PersonalWorkspace {
		t.Errorf("Name = %q, want %q", personal.Name, organization.PersonalWorkspace)
	}
	if personal.OwnerID != "alice" || !personal.HasMember("alice") {
		t.Errorf("owner/member not set: %+v", personal)
	}
	if out.CurrentID != personal.ID {
		t.Errorf("CurrentID = %q, want %q", out.CurrentID, personal.ID)
	}

	again, err := uc.List(ctx, alice)
	if err != nil {
		t.Fatalf("second List() error = %v", err)
	}
	if len(again.Organizations) != 1 {
		t.Errorf("personal workspace created twice: %d orgs", len(again.Organizations))
	}
}

func TestList_StaleSelectionFallsBackToFirst(t *testing.T) {
	r := newMockRepo()
	r.addOrg("o1", "alice")
	r.addOrg("o2", "alice")
	r.selections["alice"] = model.Selection{UserID: "alice", OrgID: "gone"}
	uc := New(&mockLogger{}, r)

	out, err := uc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.CurrentID != "o1" {
		t.Errorf("CurrentID = %q, want o1", out.CurrentID)
	}
	if r.selections["alice"].OrgID != "o1" {
		t.Errorf("selection not repaired: %+v", r.selections["alice"])
	}
}

func TestCreate(t *testing.T) {
	r := newMockRepo()
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	if _, err := uc.Create(ctx, alice, "   "); !errors.Is(err, organization.ErrEmptyName) {
		t.Errorf("Create(blank) error = %v, want ErrEmptyName", err)
	}

	org, err := uc.Create(ctx, alice, "  Acme Corp ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if org.Name != "Acme Corp" {
		t.Errorf("Name = %q, want trimmed", org.Name)
	}
	if !org.HasMember("alice") {
		t.Error("creator is not a member")
	}
	if r.selections["alice"].OrgID != org.ID {
		t.Error("new organization not selected")
	}

	r.fail = true
	if _, err := uc.Create(ctx, alice, "Broken"); !errors.Is(err, errStore) {
		t.Errorf("Create() error = %v, want errStore", err)
	}
}

func TestSwitch(t *testing.T) {
	r := newMockRepo()
	r.addOrg("o1", "alice")
	r.addOrg("o2", "alice", "bob")
	r.addOrg("o3", "bob")
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	tests := []struct {
		name    string
		orgID   string
		wantErr error
	}{
		{name: "member", orgID: "o2"},
		{name: "not a member", orgID: "o3", wantErr: organization.ErrNotMember},
		{name: "unknown", orgID: "o9", wantErr: organization.ErrOrganizationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, err := uc.Switch(ctx, alice, tt.orgID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Switch() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && org.ID != tt.orgID {
				t.Errorf("Switch() = %q, want %q", org.ID, tt.orgID)
			}
		})
	}

	if got := r.selections["alice"].OrgID; got != "o2" {
		t.Errorf("selection = %q, want o2 after failed switches", got)
	}
}

func TestCurrent(t *testing.T) {
	r := newMockRepo()
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	if _, err := uc.Current(ctx, alice); !errors.Is(err, organization.ErrNoCurrentOrganization) {
		t.Errorf("Current() without orgs error = %v", err)
	}

	r.addOrg("o1", "alice")
	r.addTeam("t1", "o1", "alice")
	r.selections["alice"] = model.Selection{UserID: "alice", OrgID: "o1", TeamID: "t1"}

	out, err := uc.Current(ctx, alice)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if out.Organization.ID != "o1" {
		t.Errorf("Organization = %q, want o1", out.Organization.ID)
	}
	if out.Team == nil || out.Team.ID != "t1" {
		t.Errorf("Team = %+v, want t1", out.Team)
	}
}
