package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/gcalendar"
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

// mockRepo is an in-memory task store that preserves insertion order.
type mockRepo struct {
	mu         sync.Mutex
	tasks      []model.Task
	failList   bool
	failNext   bool
	countDelay time.Duration
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		return model.Task{}, errStore
	}
	t := model.Task{
		ID:           opt.ID,
		UserID:       opt.UserID,
		Title:        opt.Title,
		Description:  opt.Description,
		Priority:     opt.Priority,
		Category:     opt.Category,
		Status:       opt.Status,
		Completed:    opt.Completed,
		DueDate:      opt.DueDate,
		DueTime:      opt.DueTime,
		Subtasks:     slices.Clone(opt.Subtasks),
		CalendarLink: opt.CalendarLink,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tasks {
		if t.ID == opt.ID && (opt.UserID == "" || t.UserID == opt.UserID) {
			t.Subtasks = slices.Clone(t.Subtasks)
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList {
		return nil, 0, errStore
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.Search != "" {
			q := strings.ToLower(opt.Search)
			if !strings.Contains(strings.ToLower(t.Title), q) && !strings.Contains(strings.ToLower(t.Description), q) {
				continue
			}
		}
		if opt.DueFrom != "" && (t.DueDate == "" || t.DueDate < opt.DueFrom) {
			continue
		}
		if opt.DueTo != "" && (t.DueDate == "" || t.DueDate > opt.DueTo) {
			continue
		}
		out = append(out, t)
	}
	total := len(out)
	if opt.Offset > 0 {
		out = out[min(opt.Offset, len(out)):]
	}
	if opt.Limit > 0 {
		out = out[:min(opt.Limit, len(out))]
	}
	return out, total, nil
}

func (m *mockRepo) CountTasks(ctx context.Context, userID string) (int, error) {
	time.Sleep(m.countDelay)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tasks {
		if t.ID != opt.ID || t.UserID != opt.UserID {
			continue
		}
		t.Title = opt.Title
		t.Description = opt.Description
		t.Priority = opt.Priority
		t.Category = opt.Category
		t.Status = opt.Status
		t.Completed = opt.Completed
		t.DueDate = opt.DueDate
		t.DueTime = opt.DueTime
		t.Subtasks = slices.Clone(opt.Subtasks)
		t.CalendarLink = opt.CalendarLink
		t.UpdatedAt = time.Now()
		m.tasks[i] = t
		return t, nil
	}
	return model.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = slices.DeleteFunc(m.tasks, func(t model.Task) bool {
		return t.ID == opt.ID && t.UserID == opt.UserID
	})
	return nil
}

// mockSubscription grants a fixed tier.
type mockSubscription struct {
	tier model.Tier
	err  error
}

func (m *mockSubscription) info() model.TierInfo {
	tier := m.tier
	if tier == "" {
		tier = model.TierFree
	}
	info, _ := model.LookupTier(tier)
	return info
}

func (m *mockSubscription) Current(ctx context.Context, sc model.Scope) (model.TierInfo, error) {
	return m.info(), m.err
}

func (m *mockSubscription) Tiers() []model.TierInfo { return model.Tiers }

func (m *mockSubscription) Change(ctx context.Context, sc model.Scope, tier model.Tier) (model.TierInfo, error) {
	m.tier = tier
	return m.info(), nil
}

func (m *mockSubscription) HasFeature(ctx context.Context, sc model.Scope, feature model.Feature) (bool, error) {
	return slices.Contains(m.info().Features, feature), m.err
}

func (m *mockSubscription) CanAddTask(ctx context.Context, sc model.Scope, count int) (bool, error) {
	info := m.info()
	return info.MaxTasks == model.Unlimited || count < info.MaxTasks, m.err
}

type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	events  []gcalendar.Event
	err     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.test/evt-1"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.events, m.err
}

var (
	testScope = model.Scope{UserID: "user-1"}
	otherUser = model.Scope{UserID: "user-2"}
	// Monday 19 October 2026, 14:30 UTC
	refMonday = time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)
)

func newTestUseCase(r *mockRepo, sub *mockSubscription, cal gcalendar.Calendar) *implUseCase {
	dm, _ := datemath.NewParser("UTC")
	if sub == nil {
		sub = &mockSubscription{}
	}
	return New(&mockLogger{}, r, sub, cal, "primary", dm)
}
