package task

import (
	"time"

	"taskflow-pro/internal/model"
)

// Filter selects tasks by completion.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

type CreateInput struct {
	Title       string
	Description string
	Priority    model.Priority // empty = medium
	Category    model.Category // empty = personal
	Status      model.Status   // empty = todo
	DueDate     string
	DueTime     string
	Subtasks    []string
}

type ListInput struct {
	Filter   Filter
	Search   string
	Category string
	Limit    int
	Offset   int
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Priority    *model.Priority
	Category    *model.Category
	DueDate     *string
	DueTime     *string
}

type MoveInput struct {
	ID     string
	Status model.Status
}

type AddSubtaskInput struct {
	TaskID string
	Text   string
}

type SubtaskInput struct {
	TaskID    string
	SubtaskID string
}

type BoardColumn struct {
	Status model.Status
	Tasks  []model.Task
}

type BoardOutput struct {
	Columns []BoardColumn
}

type CalendarInput struct {
	Year  int
	Month time.Month
}

// ExternalEvent is a Google Calendar event shown next to tasks.
type ExternalEvent struct {
	ID     string
	Title  string
	Start  time.Time
	AllDay bool
	Link   string
}

type CalendarDay struct {
	Date   string
	Tasks  []model.Task
	Events []ExternalEvent
}

type CalendarOutput struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

type StatsOutput struct {
	Total               int
	Completed           int
	Active              int
	Today               int
	Overdue             int
	HighPriorityPending int
	CompletionRate      int // percent, rounded
}

// ParseInput is resolved against Date when set, else Ref, else now.
type ParseInput struct {
	Text string
	Ref  time.Time
	Date string // YYYY-MM-DD in the configured timezone
}
