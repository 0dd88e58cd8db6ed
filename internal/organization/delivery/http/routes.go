package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
)

// RegisterRoutes maps /organizations onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	orgs := rg.Group("/organizations", mw.Auth())
	{
		orgs.GET("", h.List)
		orgs.POST("", h.Create)
		orgs.GET("/current", h.Current)
		orgs.PUT("/current", h.Switch)
		orgs.GET("/current/teams", h.ListTeams)
		orgs.POST("/current/teams", h.CreateTeam)
		orgs.PUT("/current/team", h.SwitchTeam)
	}
}
