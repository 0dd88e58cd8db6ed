package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/organization"
	repo "taskflow-pro/internal/organization/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (organization.ListOutput, error) {
	orgs, err := uc.repo.ListOrganizations(ctx, repo.ListOrganizationsOptions{MemberID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.ListOrganizations: %v", err)
		return organization.ListOutput{}, err
	}

	if len(orgs) == 0 {
		personal, err := uc.createAndSelect(ctx, sc, organization.PersonalWorkspace)
		if err != nil {
			return organization.ListOutput{}, err
		}
		uc.l.Infof(ctx, "uc.List created personal workspace %s", personal.ID)
		return organization.ListOutput{Organizations: []model.Organization{personal}, CurrentID: personal.ID}, nil
	}

	current, err := uc.resolveOrg(ctx, sc, orgs)
	if err != nil {
		return organization.ListOutput{}, err
	}
	return organization.ListOutput{Organizations: orgs, CurrentID: current.ID}, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, name string) (model.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Organization{}, organization.ErrEmptyName
	}
	return uc.createAndSelect(ctx, sc, name)
}

// Switch selects orgID for the caller and clears any team selection.
func (uc *implUseCase) Switch(ctx context.Context, sc model.Scope, orgID string) (model.Organization, error) {
	org, err := uc.repo.GetOneOrganization(ctx, orgID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Switch repo.GetOneOrganization: %v", err)
		return model.Organization{}, err
	}
	if org.ID == "" {
		return model.Organization{}, organization.ErrOrganizationNotFound
	}
	if !org.HasMember(sc.UserID) {
		uc.l.Warnf(ctx, "uc.Switch user %s is not a member of %s", sc.UserID, orgID)
		return model.Organization{}, organization.ErrNotMember
	}

	if err := uc.repo.SaveSelection(ctx, model.Selection{UserID: sc.UserID, OrgID: org.ID}); err != nil {
		uc.l.Errorf(ctx, "uc.Switch repo.SaveSelection: %v", err)
		return model.Organization{}, err
	}
	return org, nil
}

func (uc *implUseCase) Current(ctx context.Context, sc model.Scope) (organization.CurrentOutput, error) {
	org, sel, err := uc.current(ctx, sc)
	if err != nil {
		return organization.CurrentOutput{}, err
	}

	out := organization.CurrentOutput{Organization: org}
	if sel.TeamID == "" {
		return out, nil
	}

	team, err := uc.repo.GetOneTeam(ctx, sel.TeamID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Current repo.GetOneTeam: %v", err)
		return organization.CurrentOutput{}, err
	}
	if team.ID != "" && team.OrgID == org.ID {
		out.Team = &team
	}
	return out, nil
}

func (uc *implUseCase) createAndSelect(ctx context.Context, sc model.Scope, name string) (model.Organization, error) {
	org, err := uc.repo.CreateOrganization(ctx, repo.CreateOrganizationOptions{
		ID:      uuid.NewString(),
		Name:    name,
		OwnerID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateOrganization: %v", err)
		return model.Organization{}, err
	}

	if err := uc.repo.SaveSelection(ctx, model.Selection{UserID: sc.UserID, OrgID: org.ID}); err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.SaveSelection: %v", err)
		return model.Organization{}, err
	}
	return org, nil
}

// current returns the selected organization, falling back to the caller's
// first organization when the selection is missing or stale.
func (uc *implUseCase) current(ctx context.Context, sc model.Scope) (model.Organization, model.Selection, error) {
	sel, err := uc.repo.GetSelection(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.current repo.GetSelection: %v", err)
		return model.Organization{}, model.Selection{}, err
	}

	if sel.OrgID != "" {
		org, err := uc.repo.GetOneOrganization(ctx, sel.OrgID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.current repo.GetOneOrganization: %v", err)
			return model.Organization{}, model.Selection{}, err
		}
		if org.ID != "" && org.HasMember(sc.UserID) {
			return org, sel, nil
		}
	}

	orgs, err := uc.repo.ListOrganizations(ctx, repo.ListOrganizationsOptions{MemberID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.current repo.ListOrganizations: %v", err)
		return model.Organization{}, model.Selection{}, err
	}
	if len(orgs) == 0 {
		return model.Organization{}, model.Selection{}, organization.ErrNoCurrentOrganization
	}

	sel = model.Selection{UserID: sc.UserID, OrgID: orgs[0].ID}
	if err := uc.repo.SaveSelection(ctx, sel); err != nil {
		uc.l.Errorf(ctx, "uc.current repo.SaveSelection: %v", err)
		return model.Organization{}, model.Selection{}, err
	}
	return orgs[0], sel, nil
}

// resolveOrg picks the selected organization out of orgs, or the first one.
func (uc *implUseCase) resolveOrg(ctx context.Context, sc model.Scope, orgs []model.Organization) (model.Organization, error) {
	sel, err := uc.repo.GetSelection(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.GetSelection: %v", err)
		return model.Organization{}, err
	}
	for _, o := range orgs {
		if o.ID == sel.OrgID {
			return o, nil
		}
	}

	if err := uc.repo.SaveSelection(ctx, model.Selection{UserID: sc.UserID, OrgID: orgs[0].ID}); err != nil {
		uc.l.Errorf(ctx, "uc.List repo.SaveSelection: %v", err)
		return model.Organization{}, err
	}
	return orgs[0], nil
}
