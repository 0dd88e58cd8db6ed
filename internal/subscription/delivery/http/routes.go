package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
)

// RegisterRoutes maps /subscription onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sub := rg.Group("/subscription", mw.Auth())
	{
		sub.GET("", h.Current)
		sub.PUT("", h.Change)
		sub.GET("/tiers", h.Tiers)
	}
}
