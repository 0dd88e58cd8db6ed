package model

import "slices"

// Organization groups users into a shared workspace.
type Organization struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	OwnerID string   `json:"owner_id"`
	Members []string `json:"members"`
}

// HasMember reports whether userID belongs to the organization.
func (o Organization) HasMember(userID string) bool {
	return slices.Contains(o.Members, userID)
}

// Team is a subgroup of an organization.
type Team struct {
	ID      string   `json:"id"`
	OrgID   string   `json:"org_id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// HasMember reports whether userID belongs to the team.
func (t Team) HasMember(userID string) bool {
	return slices.Contains(t.Members, userID)
}

// Selection is the organization and team a user is currently viewing.
// An empty TeamID means the whole organization.
type Selection struct {
	UserID string `json:"user_id"`
	OrgID  string `json:"org_id"`
	TeamID string `json:"team_id"`
}
