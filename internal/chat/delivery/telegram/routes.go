package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook at POST /webhook/telegram.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
