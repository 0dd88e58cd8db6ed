package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskflow-pro/internal/chat/repository"
	"taskflow-pro/internal/model"
)

const (
	DefaultUsers = 10000
	DefaultTTL   = 24 * time.Hour
)

type implRepository struct {
	mu      sync.Mutex
	limit   int
	history *expirable.LRU[string, []model.ChatMessage]
}

// New keeps the last limit messages for up to users conversations. A
// conversation idle for ttl is dropped.
func New(limit, users int, ttl time.Duration) repository.Repository {
	if users <= 0 {
		users = DefaultUsers
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		limit:   limit,
		history: expirable.NewLRU[string, []model.ChatMessage](users, nil, ttl),
	}
}

func (r *implRepository) Append(ctx context.Context, userID string, msgs ...model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, _ := r.history.Get(userID)
	next := append(slices.Clone(current), msgs...)
	if r.limit > 0 && len(next) > r.limit {
		next = next[len(next)-r.limit:]
	}
	r.history.Add(userID, next)
	return nil
}

func (r *implRepository) List(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, _ := r.history.Get(userID)
	return slices.Clone(current), nil
}
