package telegram

import (
	"errors"

	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/task"
)

const (
	startText = "👋 Welcome to *TaskFlow Pro*!\n\nSend me a message like _\"Add meeting tomorrow at 3pm\"_ and I'll create the task for you. " +
		"Ask _\"What's on my plate today?\"_ for a summary or /help for everything I can do."
	lockedText    = "🔒 The assistant is part of the Premium plan. Upgrade in TaskFlow Pro to chat with me."
	limitText     = "⚠️ You've reached the task limit of your plan. Upgrade to add more tasks."
	failedText    = "Something went wrong while handling your message. Please try again."
	ignoredStatus = "ignored"
)

// errorMessage returns the chat reply for a failed message.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, chat.ErrFeatureLocked):
		return lockedText
	case errors.Is(err, task.ErrTaskLimitReached):
		return limitText
	}
	return failedText
}
