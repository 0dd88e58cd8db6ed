package http

import (
	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
)

// RegisterRoutes maps /tasks and /categories onto the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/categories", h.Categories)

	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/board", h.Board)
		tasks.GET("/calendar", h.Calendar)
		tasks.GET("/stats", h.Stats)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.PUT("/:id/status", h.Move)
		tasks.POST("/:id/subtasks", h.AddSubtask)
		tasks.POST("/:id/subtasks/:subtask_id/toggle", h.ToggleSubtask)
		tasks.DELETE("/:id/subtasks/:subtask_id", h.DeleteSubtask)
	}
}
