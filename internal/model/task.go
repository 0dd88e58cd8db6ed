package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities high first. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p.Rank() < 3
}

// Status is the kanban column of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists the kanban columns in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// IsValid reports whether s is a known kanban column.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Subtask is a checklist item inside a task.
type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is a persisted task owned by a single user.
type Task struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	Priority     Priority
	Category     Category
	Status       Status
	Completed    bool
	DueDate      string // YYYY-MM-DD, empty when unscheduled
	DueTime      string // HH:MM, empty when unscheduled
	Subtasks     []Subtask
	CalendarLink string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveStatus resolves rows written without a status.
func (t Task) EffectiveStatus() Status {
	if t.Status.IsValid() {
		return t.Status
	}
	if t.Completed {
		return StatusDone
	}
	return StatusTodo
}

// IsOverdue reports whether a pending task was due before today.
func (t Task) IsOverdue(today string) bool {
	return !t.Completed && t.DueDate != "" && t.DueDate < today
}

// IsDueOn reports whether a pending task is due on day.
func (t Task) IsDueOn(day string) bool {
	return !t.Completed && t.DueDate == day
}
