package subscription

import (
	"slices"

	"taskflow-pro/internal/model"
)

// Allows reports whether tier grants feature. Features outside the catalogue
// are never gated.
func Allows(tier model.TierInfo, feature model.Feature) bool {
	if !feature.Gated() {
		return true
	}
	return slices.Contains(tier.Features, feature)
}

// WithinQuota reports whether a user on tier with count tasks may add another.
func WithinQuota(tier model.TierInfo, count int) bool {
	if tier.MaxTasks == model.Unlimited {
		return true
	}
	return count < tier.MaxTasks
}
