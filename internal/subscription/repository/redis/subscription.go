package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/subscription/repository"
)

func (r *implRepository) GetTier(ctx context.Context, userID string) (model.Tier, error) {
	val, err := r.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTier"), err)
		return "", repository.ErrFailedToGet
	}
	return model.Tier(val), nil
}

func (r *implRepository) SetTier(ctx context.Context, userID string, tier model.Tier) error {
	if err := r.client.Set(ctx, key(userID), string(tier), 0).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetTier"), err)
		return repository.ErrFailedToSet
	}
	return nil
}
