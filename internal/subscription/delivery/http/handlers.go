package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/response"
)

// Current godoc
// @Summary     Current plan
// @Tags        Subscription
// @Produce     json
// @Security    Bearer
// @Success     200 {object} tierResp
// @Router      /api/v1/subscription [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	info, err := h.uc.Current(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTierResp(info))
}

// Tiers godoc
// @Summary     Plan catalogue
// @Description Lists every plan in ascending price order and marks the caller's.
// @Tags        Subscription
// @Produce     json
// @Security    Bearer
// @Success     200 {object} tiersResp
// @Router      /api/v1/subscription/tiers [GET]
func (h *handler) Tiers(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	info, err := h.uc.Current(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTiersResp(h.uc.Tiers(), info))
}

// Change godoc
// @Summary     Change plan
// @Description Switches the caller to another plan. No payment is taken.
// @Tags        Subscription
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body changeReq true "Target tier"
// @Success     200 {object} tierResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/subscription [PUT]
func (h *handler) Change(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processChangeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.uc.Change(ctx, sc, model.Tier(req.Tier))
	if err != nil {
		h.l.Warnf(ctx, "uc.Change: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTierResp(info))
}
