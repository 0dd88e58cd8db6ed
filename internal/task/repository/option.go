package repository

import "taskflow-pro/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	Priority     model.Priority
	Category     model.Category
	Status       model.Status
	Completed    bool
	DueDate      string
	DueTime      string
	Subtasks     []model.Subtask
	CalendarLink string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID    string
	Completed *bool
	Search    string // case-insensitive match on title or description
	Category  model.Category
	DueFrom   string // inclusive ISO date
	DueTo     string // inclusive ISO date
	Limit     int    // 0 = no limit
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions replaces every mutable column of a Task.
type UpdateTaskOptions struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	Priority     model.Priority
	Category     model.Category
	Status       model.Status
	Completed    bool
	DueDate      string
	DueTime      string
	Subtasks     []model.Subtask
	CalendarLink string
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
