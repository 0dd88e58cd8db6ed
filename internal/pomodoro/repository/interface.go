package repository

import (
	"context"

	"taskflow-pro/internal/model"
)

// Repository keeps one timer per user.
type Repository interface {
	// GetTimer reports false when the user has no timer yet.
	GetTimer(ctx context.Context, userID string) (model.PomodoroTimer, bool, error)
	SaveTimer(ctx context.Context, userID string, t model.PomodoroTimer) error
}
