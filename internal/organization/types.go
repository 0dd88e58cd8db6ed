package organization

import "taskflow-pro/internal/model"

// PersonalWorkspace is the name of the organization created for new users.
const PersonalWorkspace = "Personal Workspace"

type ListOutput struct {
	Organizations []model.Organization
	CurrentID     string
}

// CurrentOutput is the active selection. Team is nil for the whole-organization view.
type CurrentOutput struct {
	Organization model.Organization
	Team         *model.Team
}
