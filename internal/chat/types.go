package chat

import (
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/taskparse"
)

// Intent is the rule that answered a message.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentHelp       Intent = "help"
	IntentCommand    Intent = "command"
	IntentMotivation Intent = "motivation"
	IntentTip        Intent = "tip"
	IntentToday      Intent = "today"
	IntentOverdue    Intent = "overdue"
	IntentStats      Intent = "stats"
	IntentThanks     Intent = "thanks"
	IntentGoodbye    Intent = "goodbye"
	IntentFallback   Intent = "fallback"
	IntentUnknown    Intent = "unknown"
)

// ActionAddTask reports that a task was created from the message.
const ActionAddTask = "ADD_TASK"

// HistorySize is how many messages are kept per user.
const HistorySize = 50

type ReplyInput struct {
	Text string
	Now  time.Time // zero means the current time
}

type Action struct {
	Type  string
	Draft taskparse.TaskDraft
	Task  model.Task
}

type ReplyOutput struct {
	Message model.ChatMessage
	Intent  Intent
	Action  *Action
}
