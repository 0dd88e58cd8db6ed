package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/datemath"
)

func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input chat.ReplyInput) (chat.ReplyOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.ReplyOutput{}, chat.ErrEmptyMessage
	}
	if err := uc.checkFeature(ctx, sc); err != nil {
		return chat.ReplyOutput{}, err
	}

	now := input.Now
	if now.IsZero() {
		now = uc.dateMath.Now()
	}
	now = now.In(uc.dateMath.Location())

	intent := detect(text)
	out := chat.ReplyOutput{Intent: intent}
	var reply string

	switch intent {
	case chat.IntentGreeting:
		reply = greetings[uc.pick(len(greetings))]
	case chat.IntentHelp:
		reply = helpText
	case chat.IntentMotivation:
		reply = motivationalQuotes[uc.pick(len(motivationalQuotes))]
	case chat.IntentTip:
		reply = productivityTips[uc.pick(len(productivityTips))]
	case chat.IntentToday, chat.IntentOverdue:
		tasks, err := uc.task.List(ctx, sc, task.ListInput{})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Reply task.List: %v", err)
			return chat.ReplyOutput{}, err
		}
		if intent == chat.IntentToday {
			reply = todayText(tasks.Tasks, datemath.FormatDate(now))
		} else {
			reply = overdueText(tasks.Tasks, datemath.FormatDate(now))
		}
	case chat.IntentStats:
		stats, err := uc.task.Stats(ctx, sc, now)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Reply task.Stats: %v", err)
			return chat.ReplyOutput{}, err
		}
		reply = statsText(stats)
	case chat.IntentCommand:
		action, err := uc.addTask(ctx, sc, text, now)
		if err != nil {
			return chat.ReplyOutput{}, err
		}
		out.Action = &action
		reply = createdText(action.Draft)
	case chat.IntentThanks:
		reply = thanksText
	case chat.IntentGoodbye:
		reply = goodbyeText
	case chat.IntentFallback:
		draft := uc.task.Parse(ctx, task.ParseInput{Text: text, Ref: now})
		reply = fallbackText(draft.Title)
	default:
		reply = defaultText
	}

	userMsg := newMessage(model.ChatRoleUser, text, now)
	out.Message = newMessage(model.ChatRoleBot, reply, now)
	if err := uc.history.Append(ctx, sc.UserID, userMsg, out.Message); err != nil {
		uc.l.Warnf(ctx, "uc.Reply history.Append: %v", err)
	}
	return out, nil
}

func (uc *implUseCase) History(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error) {
	if err := uc.checkFeature(ctx, sc); err != nil {
		return nil, err
	}

	msgs, err := uc.history.List(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History history.List: %v", err)
		return nil, err
	}
	if len(msgs) == 0 {
		return []model.ChatMessage{{ID: "welcome", Role: model.ChatRoleBot, Text: welcomeText}}, nil
	}
	return msgs, nil
}

// addTask parses a creation command and stores the resulting task.
func (uc *implUseCase) addTask(ctx context.Context, sc model.Scope, text string, now time.Time) (chat.Action, error) {
	draft := uc.task.Parse(ctx, task.ParseInput{Text: text, Ref: now})

	created, err := uc.task.Create(ctx, sc, task.CreateInput{
		Title:    draft.Title,
		Priority: model.Priority(draft.Priority),
		Category: model.Category(draft.Category),
		DueDate:  draft.DueDate,
		DueTime:  draft.DueTime,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Reply task.Create: %v", err)
		return chat.Action{}, err
	}

	uc.l.Infof(ctx, "uc.Reply created task %s from chat", created.ID)
	return chat.Action{Type: chat.ActionAddTask, Draft: draft, Task: created}, nil
}

func (uc *implUseCase) checkFeature(ctx context.Context, sc model.Scope) error {
	ok, err := uc.sub.HasFeature(ctx, sc, model.FeatureChatbot)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkFeature sub.HasFeature: %v", err)
		return err
	}
	if !ok {
		return chat.ErrFeatureLocked
	}
	return nil
}

func newMessage(role model.ChatRole, text string, at time.Time) model.ChatMessage {
	return model.ChatMessage{ID: uuid.NewString(), Role: role, Text: text, CreatedAt: at}
}
