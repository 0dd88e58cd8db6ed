package scope

import (
	"context"
	"time"

	"taskflow-pro/internal/model"
)

// Manager issues and verifies bearer tokens carrying a model.Scope.
type Manager interface {
	CreateToken(sc model.Scope) (string, error)
	Verify(token string) (Payload, error)
}

// New returns an HS256 Manager. A zero ttl falls back to DefaultTTL.
func New(secretKey string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

type scopeCtxKey struct{}

// SetScopeToContext attaches sc to ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope attached by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}
