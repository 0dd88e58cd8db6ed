package organization

import (
	"context"

	"taskflow-pro/internal/model"
)

// UseCase manages the organizations and teams a user works in and which of
// them is currently selected.
type UseCase interface {
	// List returns the caller's organizations, creating a personal workspace
	// on first use.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, name string) (model.Organization, error)
	Switch(ctx context.Context, sc model.Scope, orgID string) (model.Organization, error)
	Current(ctx context.Context, sc model.Scope) (CurrentOutput, error)

	ListTeams(ctx context.Context, sc model.Scope) ([]model.Team, error)
	CreateTeam(ctx context.Context, sc model.Scope, name string) (model.Team, error)
	// SwitchTeam selects a team of the current organization. An empty or
	// unknown id selects the whole organization.
	SwitchTeam(ctx context.Context, sc model.Scope, teamID string) (CurrentOutput, error)
}
