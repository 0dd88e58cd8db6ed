package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/response"
)

// Modes godoc
// @Summary     List timer modes
// @Tags        Pomodoro
// @Produce     json
// @Security    Bearer
// @Success     200 {object} modesResp
// @Router      /api/v1/pomodoro/modes [GET]
func (h *handler) Modes(c *gin.Context) {
	response.OK(c, newModesResp(h.uc.Modes()))
}

// State godoc
// @Summary     Timer state
// @Description Returns the caller's timer. Time left is computed at request time.
// @Tags        Pomodoro
// @Produce     json
// @Security    Bearer
// @Success     200 {object} stateResp
// @Router      /api/v1/pomodoro [GET]
func (h *handler) State(c *gin.Context) {
	h.respond(c, "uc.State", h.uc.State)
}

// Start godoc
// @Summary     Start or resume the timer
// @Tags        Pomodoro
// @Produce     json
// @Security    Bearer
// @Success     200 {object} stateResp
// @Router      /api/v1/pomodoro/start [POST]
func (h *handler) Start(c *gin.Context) {
	h.respond(c, "uc.Start", h.uc.Start)
}

// Pause godoc
// @Summary     Pause the timer
// @Tags        Pomodoro
// @Produce     json
// @Security    Bearer
// @Success     200 {object} stateResp
// @Router      /api/v1/pomodoro/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	h.respond(c, "uc.Pause", h.uc.Pause)
}

// Reset godoc
// @Summary     Reset the timer
// @Description Stops the timer and restores the full length of the current mode.
// @Tags        Pomodoro
// @Produce     json
// @Security    Bearer
// @Success     200 {object} stateResp
// @Router      /api/v1/pomodoro/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	h.respond(c, "uc.Reset", h.uc.Reset)
}

// Switch godoc
// @Summary     Switch mode
// @Tags        Pomodoro
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body modeReq true "focus, short_break or long_break"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/pomodoro/mode [PUT]
func (h *handler) Switch(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processModeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Switch(ctx, sc, model.PomodoroMode(req.Mode))
	if err != nil {
		h.l.Warnf(ctx, "uc.Switch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(s))
}

func (h *handler) respond(c *gin.Context, op string, fn func(context.Context, model.Scope) (model.PomodoroState, error)) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	s, err := fn(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStateResp(s))
}
