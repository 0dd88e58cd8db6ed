package usecase

import (
	"context"
	"errors"
	"testing"

	"taskflow-pro/internal/organization"
)

func TestListTeams_OnlyMemberTeamsOfCurrentOrg(t *testing.T) {
	r := newMockRepo()
	r.addOrg("o1", "alice", "bob")
	r.addOrg("o2", "alice")
	r.addTeam("design", "o1", "alice")
	r.addTeam("ops", "o1", "bob")
	r.addTeam("elsewhere", "o2", "alice")
	uc := New(&mockLogger{}, r)

	teams, err := uc.ListTeams(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if len(teams) != 1 || teams[0].ID != "design" {
		t.Errorf("ListTeams() = %+v, want [design]", teams)
	}
}

func TestListTeams_EmptyIsNotNil(t *testing.T) {
	r := newMockRepo()
	r.addOrg("o1", "alice")
	uc := New(&mockLogger{}, r)

	teams, err := uc.ListTeams(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if teams == nil || len(teams) != 0 {
		t.Errorf("ListTeams() = %#v, want empty slice", teams)
	}
}

func TestCreateTeam(t *testing.T) {
	r := newMockRepo()
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	if _, err := uc.CreateTeam(ctx, alice, "Design"); !errors.Is(err, organization.ErrNoCurrentOrganization) {
		t.Errorf("CreateTeam() without org error = %v", err)
	}

	r.addOrg("o1", "alice")
	if _, err := uc.CreateTeam(ctx, alice, ""); !errors.Is(err, organization.ErrEmptyName) {
		t.Errorf("CreateTeam(blank) error = %v", err)
	}

	team, err := uc.CreateTeam(ctx, alice, "Design")
	if err != nil {
		t.Fatalf("CreateTeam() error = %v", err)
	}
	if team.OrgID != "o1" {
		t.Errorf("OrgID = %q, want o1", team.OrgID)
	}
	if !team.HasMember("alice") {
		t.Error("creator is not a team member")
	}
}

func TestSwitchTeam(t *testing.T) {
	r := newMockRepo()
	r.addOrg("o1", "alice", "bob")
	r.addOrg("o2", "bob")
	r.addTeam("design", "o1", "alice")
	r.addTeam("ops", "o1", "bob")
	r.addTeam("foreign", "o2", "bob")
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	tests := []struct {
		name     string
		teamID   string
		wantTeam string
	}{
		{name: "member team", teamID: "design", wantTeam: "design"},
		{name: "empty selects whole org", teamID: ""},
		{name: "unknown team", teamID: "nope"},
		{name: "team without membership", teamID: "ops"},
		{name: "team of another org", teamID: "foreign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.SwitchTeam(ctx, alice, tt.teamID)
			if err != nil {
				t.Fatalf("SwitchTeam() error = %v", err)
			}
			if out.Organization.ID != "o1" {
				t.Errorf("Organization = %q, want o1", out.Organization.ID)
			}
			got := ""
			if out.Team != nil {
				got = out.Team.ID
			}
			if got != tt.wantTeam {
				t.Errorf("Team = %q, want %q", got, tt.wantTeam)
			}
			if r.selections["alice"].TeamID != tt.wantTeam {
				t.Errorf("stored TeamID = %q, want %q", r.selections["alice"].TeamID, tt.wantTeam)
			}
		})
	}
}

func TestSwitchOrgClearsTeam(t *testing.T) {
	r := newMockRepo()
	r.addOrg("o1", "alice")
	r.addOrg("o2", "alice")
	r.addTeam("design", "o1", "alice")
	uc := New(&mockLogger{}, r)
	ctx := context.Background()

	if _, err := uc.SwitchTeam(ctx, alice, "design"); err != nil {
		t.Fatalf("SwitchTeam() error = %v", err)
	}
	if _, err := uc.Switch(ctx, alice, "o2"); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	out, err := uc.Current(ctx, alice)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if out.Organization.ID != "o2" || out.Team != nil {
		t.Errorf("Current() = %+v, want o2 without team", out)
	}
}
