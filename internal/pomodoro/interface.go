package pomodoro

import (
	"context"

	"taskflow-pro/internal/model"
)

// UseCase drives a per-user focus/break timer. Time left is computed from
// the clock on every call, so no background ticker is needed.
type UseCase interface {
	Modes() []model.PomodoroModeInfo
	State(ctx context.Context, sc model.Scope) (model.PomodoroState, error)
	Start(ctx context.Context, sc model.Scope) (model.PomodoroState, error)
	Pause(ctx context.Context, sc model.Scope) (model.PomodoroState, error)
	Reset(ctx context.Context, sc model.Scope) (model.PomodoroState, error)
	Switch(ctx context.Context, sc model.Scope, mode model.PomodoroMode) (model.PomodoroState, error)
	// Suggest returns the mode that should follow the current one.
	Suggest(ctx context.Context, sc model.Scope) (model.PomodoroMode, error)
}
