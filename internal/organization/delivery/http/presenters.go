package http

import (
	"taskflow-pro/internal/model"
	"taskflow-pro/internal/organization"
)

type nameReq struct {
	Name string `json:"name" binding:"required"`
}

type switchOrgReq struct {
	OrgID string `json:"org_id" binding:"required"`
}

// switchTeamReq selects the whole organization when TeamID is empty.
type switchTeamReq struct {
	TeamID string `json:"team_id"`
}

type orgResp struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	OwnerID string   `json:"owner_id"`
	Members []string `json:"members"`
}

func newOrgResp(o model.Organization) orgResp {
	members := o.Members
	if members == nil {
		members = []string{}
	}
	return orgResp{ID: o.ID, Name: o.Name, OwnerID: o.OwnerID, Members: members}
}

type teamResp struct {
	ID      string   `json:"id"`
	OrgID   string   `json:"org_id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func newTeamResp(t model.Team) teamResp {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return teamResp{ID: t.ID, OrgID: t.OrgID, Name: t.Name, Members: members}
}

type listResp struct {
	Organizations []orgResp `json:"organizations"`
	CurrentID     string    `json:"current_id"`
}

func newListResp(out organization.ListOutput) listResp {
	resp := listResp{Organizations: make([]orgResp, 0, len(out.Organizations)), CurrentID: out.CurrentID}
	for _, o := range out.Organizations {
		resp.Organizations = append(resp.Organizations, newOrgResp(o))
	}
	return resp
}

type currentResp struct {
	Organization orgResp   `json:"organization"`
	Team         *teamResp `json:"team"`
}

func newCurrentResp(out organization.CurrentOutput) currentResp {
	resp := currentResp{Organization: newOrgResp(out.Organization)}
	if out.Team != nil {
		t := newTeamResp(*out.Team)
		resp.Team = &t
	}
	return resp
}

type teamsResp struct {
	Teams []teamResp `json:"teams"`
}

func newTeamsResp(teams []model.Team) teamsResp {
	resp := teamsResp{Teams: make([]teamResp, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, newTeamResp(t))
	}
	return resp
}
