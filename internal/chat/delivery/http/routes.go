package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
)

// RegisterRoutes maps /chat onto the handler. Sending is limited to
// perMin messages per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, perMin int) {
	c := rg.Group("/chat", mw.Auth())
	{
		c.POST("/messages", mw.RateLimit("chat", perMin, middleware.UserKey), h.Send)
		c.GET("/history", h.History)
	}
}
