package taskparse

// Priority is the urgency assigned to a draft.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Category is the life area assigned to a draft.
type Category string

const (
	CategoryWork      Category = "work"
	CategoryHealth    Category = "health"
	CategoryEducation Category = "education"
	CategoryFinance   Category = "finance"
	CategorySocial    Category = "social"
	CategoryPersonal  Category = "personal"
)

// Placeholder is the title used when nothing usable is left after extraction.
const Placeholder = "New Task"

// TaskDraft is the structured result of Extract. DueDate and DueTime are
// empty when absent; otherwise DueDate is YYYY-MM-DD and DueTime is HH:MM.
type TaskDraft struct {
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Category Category `json:"category"`
	DueDate  string   `json:"due_date,omitempty"`
	DueTime  string   `json:"due_time,omitempty"`
}

// HasDueDate reports whether a date phrase was recognised.
func (d TaskDraft) HasDueDate() bool {
	return d.DueDate != ""
}

// HasDueTime reports whether a time phrase was recognised.
func (d TaskDraft) HasDueTime() bool {
	return d.DueTime != ""
}

// IsPlaceholder reports whether the title fell back to Placeholder.
func (d TaskDraft) IsPlaceholder() bool {
	return d.Title == Placeholder
}
