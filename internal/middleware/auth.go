package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/log"
	"taskflow-pro/pkg/response"
	"taskflow-pro/pkg/scope"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
	scopeKey     = "scope"
)

// Auth rejects requests without a valid bearer token and stores the caller's
// scope on both the gin and the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(authHeader)
		if !strings.HasPrefix(raw, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix)))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := payload.Scope()
		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		ctx = context.WithValue(ctx, log.UserIDKey, sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return scope.GetScopeFromContext(c.Request.Context())
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
