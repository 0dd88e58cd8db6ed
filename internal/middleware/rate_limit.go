package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"taskflow-pro/pkg/response"
)

const (
	rateLimitWindow  = time.Minute
	maxTrackedClient = 10000
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(c *gin.Context) string

// IPKey counts requests per client address.
func IPKey(c *gin.Context) string {
	return c.ClientIP()
}

// UserKey counts requests per authenticated user, falling back to the address.
func UserKey(c *gin.Context) string {
	if sc, ok := GetScope(c); ok && sc.UserID != "" {
		return "user:" + sc.UserID
	}
	return c.ClientIP()
}

// RateLimit allows perMin requests per minute for each key. With a Redis
// client the window is shared across instances; otherwise each process keeps
// its own token buckets. A non-positive perMin disables the limit.
func (m Middleware) RateLimit(name string, perMin int, keyFn KeyFunc) gin.HandlerFunc {
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if m.redis != nil {
		return m.distributedRateLimit(name, perMin, keyFn)
	}
	return localRateLimit(perMin, keyFn)
}

func localRateLimit(perMin int, keyFn KeyFunc) gin.HandlerFunc {
	visitors := expirable.NewLRU[string, *rate.Limiter](maxTrackedClient, nil, 2*rateLimitWindow)
	limit := rate.Every(rateLimitWindow / time.Duration(perMin))

	return func(c *gin.Context) {
		key := keyFn(c)
		limiter, ok := visitors.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, perMin)
			visitors.Add(key, limiter)
		}
		if !limiter.Allow() {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) distributedRateLimit(name string, perMin int, keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("taskflow:rate_limit:%s:%s", name, keyFn(c))

		allowed, err := m.checkWindow(ctx, key, perMin)
		if err != nil {
			// Fail open on Redis errors.
			m.l.Warnf(ctx, "middleware.RateLimit %s: %v", name, err)
			c.Next()
			return
		}
		if !allowed {
			c.Header("X-RateLimit-Limit", strconv.Itoa(perMin))
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// checkWindow records a hit in a sorted-set sliding window and reports
// whether the key is still under limit.
func (m Middleware) checkWindow(ctx context.Context, key string, limit int) (bool, error) {
	now := time.Now().UnixNano()
	windowStart := now - rateLimitWindow.Nanoseconds()

	pipe := m.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.Expire(ctx, key, rateLimitWindow)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit pipeline: %w", err)
	}
	return countCmd.Val() < int64(limit), nil
}
