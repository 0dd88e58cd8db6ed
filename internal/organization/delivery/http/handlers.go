package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
	"taskflow-pro/pkg/response"
)

// List godoc
// @Summary     List organizations
// @Description Returns the caller's organizations. A personal workspace is created on first call.
// @Tags        Organizations
// @Produce     json
// @Security    Bearer
// @Success     200 {object} listResp
// @Router      /api/v1/organizations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	out, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(out))
}

// Create godoc
// @Summary     Create an organization
// @Description Creates an organization owned by the caller and selects it.
// @Tags        Organizations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body nameReq true "Organization name"
// @Success     201 {object} orgResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/organizations [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processNameReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	org, err := h.uc.Create(ctx, sc, req.Name)
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newOrgResp(org))
}

// Current godoc
// @Summary     Current selection
// @Tags        Organizations
// @Produce     json
// @Security    Bearer
// @Success     200 {object} currentResp
// @Failure     409 {object} response.Resp "No organization selected"
// @Router      /api/v1/organizations/current [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	out, err := h.uc.Current(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCurrentResp(out))
}

// Switch godoc
// @Summary     Switch organization
// @Description Selects an organization the caller belongs to and clears the team selection.
// @Tags        Organizations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body switchOrgReq true "Organization id"
// @Success     200 {object} orgResp
// @Failure     403 {object} response.Resp "Not a member"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/organizations/current [PUT]
func (h *handler) Switch(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processSwitchOrgReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	org, err := h.uc.Switch(ctx, sc, req.OrgID)
	if err != nil {
		h.l.Warnf(ctx, "uc.Switch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newOrgResp(org))
}

// ListTeams godoc
// @Summary     List teams
// @Description Returns the teams of the current organization the caller belongs to.
// @Tags        Organizations
// @Produce     json
// @Security    Bearer
// @Success     200 {object} teamsResp
// @Router      /api/v1/organizations/current/teams [GET]
func (h *handler) ListTeams(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	teams, err := h.uc.ListTeams(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListTeams: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTeamsResp(teams))
}

// CreateTeam godoc
// @Summary     Create a team
// @Tags        Organizations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body nameReq true "Team name"
// @Success     201 {object} teamResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/organizations/current/teams [POST]
func (h *handler) CreateTeam(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processNameReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	team, err := h.uc.CreateTeam(ctx, sc, req.Name)
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTeam: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTeamResp(team))
}

// SwitchTeam godoc
// @Summary     Switch team
// @Description Selects a team of the current organization. An empty or unknown team_id selects the whole organization.
// @Tags        Organizations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body switchTeamReq true "Team id"
// @Success     200 {object} currentResp
// @Router      /api/v1/organizations/current/team [PUT]
func (h *handler) SwitchTeam(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processSwitchTeamReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SwitchTeam(ctx, sc, req.TeamID)
	if err != nil {
		h.l.Warnf(ctx, "uc.SwitchTeam: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCurrentResp(out))
}
