package model

// Tier is a subscription plan.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// Feature is a capability gated by tier.
type Feature string

const (
	FeatureCalendar       Feature = "calendar"
	FeatureAnalytics      Feature = "analytics"
	FeatureUnlimitedTasks Feature = "unlimited_tasks"
	FeatureChatbot        Feature = "chatbot"
	FeatureCustomThemes   Feature = "custom_themes"
)

// Unlimited marks a tier without a task quota.
const Unlimited = -1

// TierInfo describes a plan.
type TierInfo struct {
	ID       Tier      `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	MaxTasks int       `json:"max_tasks"`
	Features []Feature `json:"features"`
	Perks    []string  `json:"perks"`
	Locked   []string  `json:"locked"`
}

// Tiers is the fixed plan catalogue in ascending price order.
var Tiers = []TierInfo{
	{
		ID:       TierFree,
		Name:     "Free",
		Price:    0,
		MaxTasks: 10,
		Features: []Feature{},
		Perks:    []string{"Up to 10 tasks", "Basic categories", "Light & dark mode", "Basic task management"},
		Locked:   []string{"Calendar integration", "AI chatbot assistant", "Priority support", "Advanced analytics", "Custom themes", "Unlimited tasks"},
	},
	{
		ID:       TierPro,
		Name:     "Pro",
		Price:    4.99,
		MaxTasks: Unlimited,
		Features: []Feature{FeatureCalendar, FeatureAnalytics, FeatureUnlimitedTasks},
		Perks:    []string{"Unlimited tasks", "All categories", "Light & dark mode", "Calendar integration", "Priority support", "Task analytics"},
		Locked:   []string{"AI chatbot assistant", "Advanced analytics", "Custom themes"},
	},
	{
		ID:       TierPremium,
		Name:     "Premium",
		Price:    9.99,
		MaxTasks: Unlimited,
		Features: []Feature{FeatureCalendar, FeatureAnalytics, FeatureUnlimitedTasks, FeatureChatbot, FeatureCustomThemes},
		Perks:    []string{"Everything in Pro", "AI chatbot assistant", "Advanced analytics", "Custom themes", "Early access to features", "Priority support 24/7"},
		Locked:   []string{},
	},
}

// LookupTier returns the catalogue entry for t.
func LookupTier(t Tier) (TierInfo, bool) {
	for _, info := range Tiers {
		if info.ID == t {
			return info, true
		}
	}
	return TierInfo{}, false
}

// Gated reports whether f is controlled by tiers at all.
func (f Feature) Gated() bool {
	switch f {
	case FeatureCalendar, FeatureAnalytics, FeatureUnlimitedTasks, FeatureChatbot, FeatureCustomThemes:
		return true
	}
	return false
}
