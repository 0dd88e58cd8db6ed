package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
)

// RegisterRoutes maps /pomodoro onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	p := rg.Group("/pomodoro", mw.Auth())
	{
		p.GET("", h.State)
		p.GET("/modes", h.Modes)
		p.POST("/start", h.Start)
		p.POST("/pause", h.Pause)
		p.POST("/reset", h.Reset)
		p.PUT("/mode", h.Switch)
	}
}
