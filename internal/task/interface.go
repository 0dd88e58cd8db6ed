package task

import (
	"context"
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/taskparse"
)

// UseCase defines the business logic interface for the task domain.
// Every operation is scoped to sc.UserID; other users' tasks are reported as not found.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Toggle flips completion and keeps the kanban status in step.
	Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	// Move changes the kanban column; completion follows the column.
	Move(ctx context.Context, sc model.Scope, input MoveInput) (model.Task, error)

	AddSubtask(ctx context.Context, sc model.Scope, input AddSubtaskInput) (model.Task, error)
	ToggleSubtask(ctx context.Context, sc model.Scope, input SubtaskInput) (model.Task, error)
	DeleteSubtask(ctx context.Context, sc model.Scope, input SubtaskInput) (model.Task, error)

	Board(ctx context.Context, sc model.Scope) (BoardOutput, error)
	Calendar(ctx context.Context, sc model.Scope, input CalendarInput) (CalendarOutput, error)
	Stats(ctx context.Context, sc model.Scope, ref time.Time) (StatsOutput, error)

	// Parse runs the free-text extractor without persisting anything.
	Parse(ctx context.Context, input ParseInput) taskparse.TaskDraft
	// SeedSamples creates demo tasks for a user who has none yet.
	SeedSamples(ctx context.Context, sc model.Scope, ref time.Time) (int, error)
}
