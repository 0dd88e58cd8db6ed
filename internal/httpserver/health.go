package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "taskflow-pro/pkg/errors"
	"taskflow-pro/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "TaskFlow Pro API"
	HealthVersion = "1.0.0"
	ServiceName   = "taskflow-pro"
)

const readyTimeout = 2 * time.Second

var errNotReady = pkgErrors.NewHTTPErrorWithCode(http.StatusServiceUnavailable, 503, "dependencies unavailable")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings the database and, when configured, redis.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{"database": "ok"}
	ready := true
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "readyCheck db.Ping: %v", err)
		checks["database"] = "down"
		ready = false
	}
	if srv.redis != nil {
		checks["redis"] = "ok"
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			srv.l.Warnf(ctx, "readyCheck redis.Ping: %v", err)
			checks["redis"] = "down"
			ready = false
		}
	}

	if !ready {
		c.AbortWithStatusJSON(errNotReady.StatusCode, response.Resp{
			ErrorCode: errNotReady.Code,
			Message:   errNotReady.Message,
			Data:      checks,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"checks":  checks,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
