package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/pomodoro/repository"
	"taskflow-pro/internal/pomodoro/repository/memory"
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

type failingRepo struct{}

func (failingRepo) GetTimer(ctx context.Context, userID string) (model.PomodoroTimer, bool, error) {
	return model.PomodoroTimer{}, false, errStore
}

func (failingRepo) SaveTimer(ctx context.Context, userID string, t model.PomodoroTimer) error {
	return errStore
}

// trackingRepo records how many get/save cycles overlap for one user.
type trackingRepo struct {
	repository.Repository
	delay    time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (r *trackingRepo) GetTimer(ctx context.Context, userID string) (model.PomodoroTimer, bool, error) {
	n := r.inFlight.Add(1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(r.delay)
	return r.Repository.GetTimer(ctx, userID)
}

func (r *trackingRepo) SaveTimer(ctx context.Context, userID string, t model.PomodoroTimer) error {
	defer r.inFlight.Add(-1)
	return r.Repository.SaveTimer(ctx, userID, t)
}

// fakeClock is advanced manually by tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var testScope = model.Scope{UserID: "user-1"}

func newTestUseCase() (*implUseCase, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	uc := New(&mockLogger{}, memory.New(0, 0))
	uc.now = clock.Now
	return uc, clock
}
