package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
)

// RegisterRoutes maps /auth onto the handler. Sign-in attempts are limited
// per client address.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, loginPerMin int) {
	a := rg.Group("/auth")
	{
		a.POST("/login", mw.RateLimit("login", loginPerMin, middleware.IPKey), h.Login)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
