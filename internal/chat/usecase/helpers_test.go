package usecase

import (
	"context"
	"errors"
	"time"

	"taskflow-pro/internal/chat/repository/memory"
	"taskflow-pro/internal/model"
	"taskflow-pro/internal/subscription"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/taskparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store failure")

// mockTaskUseCase implements the task calls the assistant makes. Other
// methods are left to the embedded nil interface.
type mockTaskUseCase struct {
	task.UseCase
	tasks   []model.Task
	stats   task.StatsOutput
	created []task.CreateInput
	err     error
}

func (m *mockTaskUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if m.err != nil {
		return task.ListOutput{}, m.err
	}
	return task.ListOutput{Tasks: m.tasks, Total: len(m.tasks)}, nil
}

func (m *mockTaskUseCase) Stats(ctx context.Context, sc model.Scope, ref time.Time) (task.StatsOutput, error) {
	return m.stats, m.err
}

func (m *mockTaskUseCase) Parse(ctx context.Context, input task.ParseInput) taskparse.TaskDraft {
	return taskparse.Extract(input.Text, input.Ref)
}

func (m *mockTaskUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.created = append(m.created, input)
	return model.Task{ID: "new-task", UserID: sc.UserID, Title: input.Title, Priority: input.Priority}, nil
}

type mockSubscription struct {
	subscription.UseCase
	allowed bool
	err     error
}

func (m *mockSubscription) HasFeature(ctx context.Context, sc model.Scope, feature model.Feature) (bool, error) {
	return m.allowed, m.err
}

var (
	testScope = model.Scope{UserID: "user-1"}
	refMonday = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)
)

func newTestUseCase(tasks *mockTaskUseCase, sub *mockSubscription) *implUseCase {
	dm, _ := datemath.NewParser("UTC")
	uc := New(&mockLogger{}, tasks, sub, memory.New(50, 0, 0), dm)
	uc.pick = func(n int) int { return 0 }
	return uc
}
