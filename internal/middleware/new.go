package middleware

import (
	"github.com/redis/go-redis/v9"

	"taskflow-pro/pkg/log"
	"taskflow-pro/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	redis      *redis.Client
}

// New builds the shared middleware set. redisClient may be nil, in which case
// rate limits are tracked in process.
func New(l log.Logger, jwtManager scope.Manager, redisClient *redis.Client) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		redis:      redisClient,
	}
}
