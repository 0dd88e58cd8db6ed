package repository

import (
	"context"

	"taskflow-pro/internal/model"
)

// Repository persists the tier chosen by each user.
type Repository interface {
	// GetTier returns "" when the user never chose a tier.
	GetTier(ctx context.Context, userID string) (model.Tier, error)
	SetTier(ctx context.Context, userID string, tier model.Tier) error
}
