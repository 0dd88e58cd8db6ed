package subscription

import (
	"context"

	"taskflow-pro/internal/model"
)

// UseCase exposes the tier catalogue and the per-user feature gate.
type UseCase interface {
	Current(ctx context.Context, sc model.Scope) (model.TierInfo, error)
	Tiers() []model.TierInfo
	Change(ctx context.Context, sc model.Scope, tier model.Tier) (model.TierInfo, error)
	HasFeature(ctx context.Context, sc model.Scope, feature model.Feature) (bool, error)
	// CanAddTask reports whether a user who already owns count tasks may add one more.
	CanAddTask(ctx context.Context, sc model.Scope, count int) (bool, error)
}
