package repository

type CreateOrganizationOptions struct {
	ID      string
	Name    string
	OwnerID string
}

// ListOrganizationsOptions filters by membership.
type ListOrganizationsOptions struct {
	MemberID string
}

type CreateTeamOptions struct {
	ID        string
	OrgID     string
	Name      string
	CreatorID string
}

// ListTeamsOptions filters teams of an organization, optionally by membership.
type ListTeamsOptions struct {
	OrgID    string
	MemberID string
}
