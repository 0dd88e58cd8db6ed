package model

// Category is the life area a task belongs to.
type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryWork      Category = "work"
	CategoryEducation Category = "education"
	CategoryHealth    Category = "health"
	CategoryFinance   Category = "finance"
	CategoryShopping  Category = "shopping"
	CategorySocial    Category = "social"
	CategoryOther     Category = "other"
)

// CategoryInfo is a catalogue entry shown to clients.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

// Categories is the fixed category catalogue in display order.
var Categories = []CategoryInfo{
	{ID: CategoryPersonal, Name: "Personal", Icon: "👤"},
	{ID: CategoryWork, Name: "Work", Icon: "💼"},
	{ID: CategoryEducation, Name: "Education", Icon: "📚"},
	{ID: CategoryHealth, Name: "Health", Icon: "🏥"},
	{ID: CategoryFinance, Name: "Finance", Icon: "💰"},
	{ID: CategoryShopping, Name: "Shopping", Icon: "🛒"},
	{ID: CategorySocial, Name: "Social", Icon: "🎉"},
	{ID: CategoryOther, Name: "Other", Icon: "📌"},
}

// IsValid reports whether c is in the catalogue.
func (c Category) IsValid() bool {
	for _, info := range Categories {
		if info.ID == c {
			return true
		}
	}
	return false
}
