package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
)

func TestReply_RequiresPremium(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: false})
	ctx := context.Background()

	if _, err := uc.Reply(ctx, testScope, chat.ReplyInput{Text: "hello"}); !errors.Is(err, chat.ErrFeatureLocked) {
		t.Errorf("Reply() error = %v, want ErrFeatureLocked", err)
	}
	if _, err := uc.History(ctx, testScope); !errors.Is(err, chat.ErrFeatureLocked) {
		t.Errorf("History() error = %v, want ErrFeatureLocked", err)
	}
}

func TestReply_EmptyMessage(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: true})

	if _, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "   "}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("Reply() error = %v, want ErrEmptyMessage", err)
	}
}

func TestReply_SubscriptionError(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{err: errStore})

	if _, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "hi"}); !errors.Is(err, errStore) {
		t.Errorf("Reply() error = %v, want errStore", err)
	}
}

func TestReply_StaticIntents(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: true})
	ctx := context.Background()

	tests := []struct {
		input string
		want  string
	}{
		{"hi", greetings[0]},
		{"help", helpText},
		{"inspire me", motivationalQuotes[0]},
		{"tip please", productivityTips[0]},
		{"thank you", thanksText},
		{"goodbye", goodbyeText},
		{"?!", defaultText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := uc.Reply(ctx, testScope, chat.ReplyInput{Text: tt.input, Now: refMonday})
			if err != nil {
				t.Fatalf("Reply() error = %v", err)
			}
			if out.Message.Text != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.input, out.Message.Text, tt.want)
			}
			if out.Action != nil {
				t.Errorf("unexpected action %+v", out.Action)
			}
		})
	}
}

func TestReply_RandomPick(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: true})
	uc.pick = func(n int) int { return n - 1 }

	out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "hello"})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if out.Message.Text != greetings[len(greetings)-1] {
		t.Errorf("Reply() = %q, want last greeting", out.Message.Text)
	}
}

func TestReply_TodaySummary(t *testing.T) {
	tasks := &mockTaskUseCase{tasks: []model.Task{
		{Title: "Ship landing page", Priority: model.PriorityHigh, DueDate: "2026-10-19", DueTime: "09:00"},
		{Title: "Review PRs", Priority: model.PriorityMedium, DueDate: "2026-10-19"},
		{Title: "Groceries", Priority: model.PriorityLow, DueDate: "2026-10-19", Completed: true},
		{Title: "Tax return", Priority: model.PriorityHigh, DueDate: "2026-10-17"},
	}}
	uc := newTestUseCase(tasks, &mockSubscription{allowed: true})

	out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "what's on my plate today?", Now: refMonday})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	for _, want := range []string{
		"(3 tasks)",
		"Completed: 1 | ⏳ Pending: 2",
		"1. 🔴 Ship landing page (09:00)",
		"2. 🟡 Review PRs\n",
	} {
		if !strings.Contains(out.Message.Text, want) {
			t.Errorf("summary missing %q:\n%s", want, out.Message.Text)
		}
	}
	if strings.Contains(out.Message.Text, "Tax return") {
		t.Error("summary lists a task from another day")
	}
}

func TestReply_TodayEmpty(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: true})

	out, _ := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "summary", Now: refMonday})
	if out.Message.Text != noTasksTodayText {
		t.Errorf("Reply() = %q", out.Message.Text)
	}
}

func TestReply_Overdue(t *testing.T) {
	tasks := &mockTaskUseCase{tasks: []model.Task{
		{Title: "Tax return", DueDate: "2026-10-17"},
		{Title: "Old but done", DueDate: "2026-10-01", Completed: true},
		{Title: "Today", DueDate: "2026-10-19"},
	}}
	uc := newTestUseCase(tasks, &mockSubscription{allowed: true})
	ctx := context.Background()

	out, err := uc.Reply(ctx, testScope, chat.ReplyInput{Text: "anything overdue?", Now: refMonday})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(out.Message.Text, "(1)") || !strings.Contains(out.Message.Text, "Tax return, due 2026-10-17") {
		t.Errorf("overdue reply = %q", out.Message.Text)
	}

	tasks.tasks = nil
	out, _ = uc.Reply(ctx, testScope, chat.ReplyInput{Text: "anything overdue?", Now: refMonday})
	if out.Message.Text != noOverdueText {
		t.Errorf("overdue reply = %q, want %q", out.Message.Text, noOverdueText)
	}
}

func TestReply_Stats(t *testing.T) {
	tests := []struct {
		rate int
		want string
	}{
		{80, "🏆"},
		{50, "👍"},
		{30, "💪"},
		{0, "🚀"},
	}

	for _, tt := range tests {
		tasks := &mockTaskUseCase{stats: task.StatsOutput{Total: 10, Completed: tt.rate / 10, CompletionRate: tt.rate}}
		uc := newTestUseCase(tasks, &mockSubscription{allowed: true})

		out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "how am I doing?", Now: refMonday})
		if err != nil {
			t.Fatalf("Reply() error = %v", err)
		}
		if !strings.HasPrefix(out.Message.Text, tt.want) {
			t.Errorf("rate %d: reply starts %q, want %q", tt.rate, out.Message.Text[:8], tt.want)
		}
	}
}

func TestReply_CommandCreatesTask(t *testing.T) {
	tasks := &mockTaskUseCase{}
	uc := newTestUseCase(tasks, &mockSubscription{allowed: true})

	out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "Add urgent client meeting tomorrow at 3pm", Now: refMonday})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if out.Intent != chat.IntentCommand {
		t.Errorf("Intent = %q, want command", out.Intent)
	}
	if out.Action == nil || out.Action.Type != chat.ActionAddTask {
		t.Fatalf("Action = %+v, want ADD_TASK", out.Action)
	}
	if out.Action.Task.ID != "new-task" {
		t.Errorf("Action.Task = %+v", out.Action.Task)
	}

	if len(tasks.created) != 1 {
		t.Fatalf("created %d tasks, want 1", len(tasks.created))
	}
	got := tasks.created[0]
	if got.Title != "client meeting" || got.Priority != model.PriorityHigh || got.Category != model.CategoryWork {
		t.Errorf("created %+v", got)
	}
	if got.DueDate != "2026-10-20" || got.DueTime != "15:00" {
		t.Errorf("due = %s %s, want 2026-10-20 15:00", got.DueDate, got.DueTime)
	}
	if !strings.Contains(out.Message.Text, "**client meeting**") || !strings.Contains(out.Message.Text, "📅 Due: 2026-10-20") {
		t.Errorf("reply = %q", out.Message.Text)
	}
}

func TestReply_CommandFailure(t *testing.T) {
	tasks := &mockTaskUseCase{err: task.ErrTaskLimitReached}
	uc := newTestUseCase(tasks, &mockSubscription{allowed: true})

	_, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "add something", Now: refMonday})
	if !errors.Is(err, task.ErrTaskLimitReached) {
		t.Errorf("Reply() error = %v, want ErrTaskLimitReached", err)
	}
}

func TestReply_FallbackSuggestsTask(t *testing.T) {
	tasks := &mockTaskUseCase{}
	uc := newTestUseCase(tasks, &mockSubscription{allowed: true})

	out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Text: "water the plants", Now: refMonday})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if out.Intent != chat.IntentFallback {
		t.Errorf("Intent = %q, want fallback", out.Intent)
	}
	if !strings.Contains(out.Message.Text, `**"add water the plants"**`) {
		t.Errorf("reply = %q", out.Message.Text)
	}
	if len(tasks.created) != 0 {
		t.Error("fallback must not create a task")
	}
}

func TestHistory(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: true})
	ctx := context.Background()

	msgs, err := uc.History(ctx, testScope)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(msgs) != 1 || msgs[0].Text != welcomeText {
		t.Fatalf("empty history = %+v, want welcome", msgs)
	}

	uc.Reply(ctx, testScope, chat.ReplyInput{Text: "hi", Now: refMonday})
	msgs, _ = uc.History(ctx, testScope)
	if len(msgs) != 2 {
		t.Fatalf("len(History()) = %d, want 2", len(msgs))
	}
	if msgs[0].Role != model.ChatRoleUser || msgs[0].Text != "hi" {
		t.Errorf("first message = %+v", msgs[0])
	}
	if msgs[1].Role != model.ChatRoleBot {
		t.Errorf("second message role = %q", msgs[1].Role)
	}
}

func TestHistoryBounded(t *testing.T) {
	uc := newTestUseCase(&mockTaskUseCase{}, &mockSubscription{allowed: true})
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		uc.Reply(ctx, testScope, chat.ReplyInput{Text: "thanks", Now: refMonday})
	}
	msgs, _ := uc.History(ctx, testScope)
	if len(msgs) != chat.HistorySize {
		t.Errorf("len(History()) = %d, want %d", len(msgs), chat.HistorySize)
	}
}
