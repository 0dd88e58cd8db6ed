package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/subscription/repository"
)

// DefaultSize bounds how many users' tiers are remembered.
const DefaultSize = 10000

type implRepository struct {
	cache *lru.Cache[string, model.Tier]
}

// New creates an in-process subscription Repository for demo mode.
// The least recently used entries fall back to the free tier once size is exceeded.
func New(size int) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, model.Tier](size)
	if err != nil {
		panic("subscription/repository/memory: " + err.Error())
	}
	return &implRepository{cache: cache}
}

func (r *implRepository) GetTier(ctx context.Context, userID string) (model.Tier, error) {
	tier, _ := r.cache.Get(userID)
	return tier, nil
}

func (r *implRepository) SetTier(ctx context.Context, userID string, tier model.Tier) error {
	r.cache.Add(userID, tier)
	return nil
}
