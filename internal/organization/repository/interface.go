package repository

import (
	"context"

	"taskflow-pro/internal/model"
)

// Repository stores organizations, teams, their members and each user's selection.
type Repository interface {
	// CreateOrganization inserts the organization with its owner as first member.
	CreateOrganization(ctx context.Context, opt CreateOrganizationOptions) (model.Organization, error)
	// GetOneOrganization returns a zero Organization when nothing matches.
	GetOneOrganization(ctx context.Context, id string) (model.Organization, error)
	ListOrganizations(ctx context.Context, opt ListOrganizationsOptions) ([]model.Organization, error)

	// CreateTeam inserts the team with its creator as first member.
	CreateTeam(ctx context.Context, opt CreateTeamOptions) (model.Team, error)
	// GetOneTeam returns a zero Team when nothing matches.
	GetOneTeam(ctx context.Context, id string) (model.Team, error)
	ListTeams(ctx context.Context, opt ListTeamsOptions) ([]model.Team, error)

	// GetSelection returns a zero Selection for users who never chose.
	GetSelection(ctx context.Context, userID string) (model.Selection, error)
	SaveSelection(ctx context.Context, sel model.Selection) error
}
