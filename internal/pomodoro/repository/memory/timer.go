package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/pomodoro/repository"
)

const (
	DefaultSize = 10000
	DefaultTTL  = 24 * time.Hour
)

type implRepository struct {
	timers *expirable.LRU[string, model.PomodoroTimer]
}

// New creates an in-process timer store. Idle users are evicted after ttl.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{timers: expirable.NewLRU[string, model.PomodoroTimer](size, nil, ttl)}
}

func (r *implRepository) GetTimer(ctx context.Context, userID string) (model.PomodoroTimer, bool, error) {
	t, ok := r.timers.Get(userID)
	return t, ok, nil
}

func (r *implRepository) SaveTimer(ctx context.Context, userID string, t model.PomodoroTimer) error {
	r.timers.Add(userID, t)
	return nil
}
