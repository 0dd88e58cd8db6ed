package repository

import (
	"context"

	"taskflow-pro/internal/model"
)

// Repository keeps a bounded message history per user.
type Repository interface {
	// Append adds msgs and drops the oldest messages beyond the store's limit.
	Append(ctx context.Context, userID string, msgs ...model.ChatMessage) error
	List(ctx context.Context, userID string) ([]model.ChatMessage, error)
}
