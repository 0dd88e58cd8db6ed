package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/organization"
	repo "taskflow-pro/internal/organization/repository"
)

// ListTeams returns the teams of the current organization the caller belongs to.
func (uc *implUseCase) ListTeams(ctx context.Context, sc model.Scope) ([]model.Team, error) {
	org, _, err := uc.current(ctx, sc)
	if err != nil {
		return nil, err
	}

	teams, err := uc.repo.ListTeams(ctx, repo.ListTeamsOptions{OrgID: org.ID, MemberID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTeams repo.ListTeams: %v", err)
		return nil, err
	}
	if teams == nil {
		teams = []model.Team{}
	}
	return teams, nil
}

func (uc *implUseCase) CreateTeam(ctx context.Context, sc model.Scope, name string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, organization.ErrEmptyName
	}

	org, _, err := uc.current(ctx, sc)
	if err != nil {
		return model.Team{}, err
	}

	team, err := uc.repo.CreateTeam(ctx, repo.CreateTeamOptions{
		ID:        uuid.NewString(),
		OrgID:     org.ID,
		Name:      name,
		CreatorID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTeam repo.CreateTeam: %v", err)
		return model.Team{}, err
	}
	return team, nil
}

func (uc *implUseCase) SwitchTeam(ctx context.Context, sc model.Scope, teamID string) (organization.CurrentOutput, error) {
	org, _, err := uc.current(ctx, sc)
	if err != nil {
		return organization.CurrentOutput{}, err
	}

	out := organization.CurrentOutput{Organization: org}
	sel := model.Selection{UserID: sc.UserID, OrgID: org.ID}

	if teamID = strings.TrimSpace(teamID); teamID != "" {
		team, err := uc.repo.GetOneTeam(ctx, teamID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.SwitchTeam repo.GetOneTeam: %v", err)
			return organization.CurrentOutput{}, err
		}
		if team.ID != "" && team.OrgID == org.ID && team.HasMember(sc.UserID) {
			sel.TeamID = team.ID
			out.Team = &team
		} else {
			uc.l.Debugf(ctx, "uc.SwitchTeam unknown team %s, showing whole organization", teamID)
		}
	}

	if err := uc.repo.SaveSelection(ctx, sel); err != nil {
		uc.l.Errorf(ctx, "uc.SwitchTeam repo.SaveSelection: %v", err)
		return organization.CurrentOutput{}, err
	}
	return out, nil
}
