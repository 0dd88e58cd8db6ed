package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"taskflow-pro/internal/subscription/repository"
	"taskflow-pro/pkg/log"
)

const keyPrefix = "taskflow:subscription:"

type implRepository struct {
	client *goredis.Client
	l      log.Logger
}

// New creates a Redis-backed subscription Repository.
func New(client *goredis.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("subscription/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("subscription/repository/redis.%s", method)
}

func key(userID string) string {
	return keyPrefix + userID
}
