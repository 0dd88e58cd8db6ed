package usecase

import (
	"context"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/subscription"
)

// Current returns the tier of the caller. Users who never chose one are on free.
func (uc *implUseCase) Current(ctx context.Context, sc model.Scope) (model.TierInfo, error) {
	tier, err := uc.repo.GetTier(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Current GetTier: %v", err)
		return model.TierInfo{}, err
	}

	info, ok := model.LookupTier(tier)
	if !ok {
		if tier != "" {
			uc.l.Warnf(ctx, "uc.Current: stored tier %q is unknown, falling back to free", tier)
		}
		info, _ = model.LookupTier(model.TierFree)
	}
	return info, nil
}

func (uc *implUseCase) Tiers() []model.TierInfo {
	out := make([]model.TierInfo, len(model.Tiers))
	copy(out, model.Tiers)
	return out
}

// Change switches the caller's tier. No payment is involved.
func (uc *implUseCase) Change(ctx context.Context, sc model.Scope, tier model.Tier) (model.TierInfo, error) {
	info, ok := model.LookupTier(tier)
	if !ok {
		return model.TierInfo{}, subscription.ErrUnknownTier
	}

	if err := uc.repo.SetTier(ctx, sc.UserID, tier); err != nil {
		uc.l.Errorf(ctx, "uc.Change SetTier: %v", err)
		return model.TierInfo{}, err
	}

	uc.l.Infof(ctx, "uc.Change: user %s switched to %s", sc.UserID, tier)
	return info, nil
}

func (uc *implUseCase) HasFeature(ctx context.Context, sc model.Scope, feature model.Feature) (bool, error) {
	info, err := uc.Current(ctx, sc)
	if err != nil {
		return false, err
	}
	return subscription.Allows(info, feature), nil
}

func (uc *implUseCase) CanAddTask(ctx context.Context, sc model.Scope, count int) (bool, error) {
	info, err := uc.Current(ctx, sc)
	if err != nil {
		return false, err
	}
	return subscription.WithinQuota(info, count), nil
}
