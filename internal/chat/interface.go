package chat

import (
	"context"

	"taskflow-pro/internal/model"
)

// UseCase is the rule-based assistant. Both operations require the chatbot
// feature and return ErrFeatureLocked otherwise.
type UseCase interface {
	// Reply answers one message and may create a task on the caller's behalf.
	Reply(ctx context.Context, sc model.Scope, input ReplyInput) (ReplyOutput, error)
	// History returns the recent conversation, oldest first. An empty
	// conversation starts with the welcome message.
	History(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error)
}
