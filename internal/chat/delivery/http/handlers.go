package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/middleware"
	"taskflow-pro/pkg/response"
)

// Send godoc
// @Summary     Send a message to the assistant
// @Description Answers a message. Creation commands such as "add meeting tomorrow at 3pm" create a task. Premium only.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body messageReq true "Message"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Premium plan required"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Reply(ctx, sc, chat.ReplyInput{Text: req.Text})
	if err != nil {
		h.l.Warnf(ctx, "uc.Reply: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReplyResp(out))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the last 50 messages, oldest first. Premium only.
// @Tags        Chat
// @Produce     json
// @Security    Bearer
// @Success     200 {object} historyResp
// @Failure     403 {object} response.Resp "Premium plan required"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	msgs, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(msgs))
}
