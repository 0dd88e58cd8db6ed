package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
	"taskflow-pro/pkg/response"
)

// Login godoc
// @Summary     Sign in
// @Description Signs in with a display name and email. No password is involved; an empty email signs in the demo user.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLoginResp(out))
}

// Me godoc
// @Summary     Current user
// @Description Returns the identity carried by the bearer token.
// @Tags        Auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, _ := middleware.GetScope(c)
	response.OK(c, newUserResp(sc))
}
