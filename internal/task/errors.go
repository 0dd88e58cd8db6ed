package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrSubtaskNotFound  = errors.New("subtask not found")
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrEmptySubtask     = errors.New("subtask text is empty")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrInvalidDueDate   = errors.New("due date must be YYYY-MM-DD")
	ErrInvalidDueTime   = errors.New("due time must be HH:MM")
	ErrInvalidMonth     = errors.New("invalid calendar month")
	ErrTaskLimitReached = errors.New("task limit reached for current plan")
)
