package usecase

import (
	"context"
	"slices"
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/pomodoro"
)

func (uc *implUseCase) Modes() []model.PomodoroModeInfo {
	return slices.Clone(model.PomodoroModes)
}

func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (model.PomodoroState, error) {
	return uc.update(ctx, sc, "State", func(t *model.PomodoroTimer) {})
}

// Start resumes the timer. A finished phase restarts from its full length.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (model.PomodoroState, error) {
	return uc.update(ctx, sc, "Start", func(t *model.PomodoroTimer) {
		if t.Active {
			return
		}
		if t.Remaining <= 0 {
			t.Remaining = model.NewPomodoroTimer(t.Mode).Remaining
		}
		t.Active = true
		t.StartedAt = uc.now()
	})
}

func (uc *implUseCase) Pause(ctx context.Context, sc model.Scope) (model.PomodoroState, error) {
	return uc.update(ctx, sc, "Pause", func(t *model.PomodoroTimer) {
		if !t.Active {
			return
		}
		t.Remaining -= uc.now().Sub(t.StartedAt)
		t.Active = false
		t.StartedAt = time.Time{}
	})
}

func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) (model.PomodoroState, error) {
	return uc.update(ctx, sc, "Reset", func(t *model.PomodoroTimer) {
		fresh := model.NewPomodoroTimer(t.Mode)
		fresh.CompletedFocus = t.CompletedFocus
		*t = fresh
	})
}

// Switch stops the timer and loads the full length of mode.
func (uc *implUseCase) Switch(ctx context.Context, sc model.Scope, mode model.PomodoroMode) (model.PomodoroState, error) {
	if _, ok := model.LookupPomodoroMode(mode); !ok {
		return model.PomodoroState{}, pomodoro.ErrUnknownMode
	}
	return uc.update(ctx, sc, "Switch", func(t *model.PomodoroTimer) {
		fresh := model.NewPomodoroTimer(mode)
		fresh.CompletedFocus = t.CompletedFocus
		*t = fresh
	})
}

func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope) (model.PomodoroMode, error) {
	s, err := uc.State(ctx, sc)
	if err != nil {
		return "", err
	}
	return s.Next, nil
}

// update loads the caller's timer, settles it against the clock, applies fn
// and stores the result. Updates for the same user never interleave.
func (uc *implUseCase) update(ctx context.Context, sc model.Scope, op string, fn func(t *model.PomodoroTimer)) (model.PomodoroState, error) {
	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	t, ok, err := uc.repo.GetTimer(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s repo.GetTimer: %v", op, err)
		return model.PomodoroState{}, err
	}
	if !ok {
		t = model.NewPomodoroTimer(model.ModeFocus)
	}

	if uc.settle(&t) {
		uc.l.Debugf(ctx, "uc.%s %s finished, %d focus sessions", op, t.Mode, t.CompletedFocus)
	}
	fn(&t)

	if err := uc.repo.SaveTimer(ctx, sc.UserID, t); err != nil {
		uc.l.Errorf(ctx, "uc.%s repo.SaveTimer: %v", op, err)
		return model.PomodoroState{}, err
	}
	return uc.observe(t), nil
}

// settle stops an active timer whose phase has run out and reports whether it did.
func (uc *implUseCase) settle(t *model.PomodoroTimer) bool {
	if !t.Active || uc.now().Sub(t.StartedAt) < t.Remaining {
		return false
	}
	t.Active = false
	t.Remaining = 0
	t.StartedAt = time.Time{}
	if t.Mode == model.ModeFocus {
		t.CompletedFocus++
	}
	return true
}

func (uc *implUseCase) observe(t model.PomodoroTimer) model.PomodoroState {
	info, _ := model.LookupPomodoroMode(t.Mode)
	s := model.PomodoroState{
		Mode:           info,
		Remaining:      t.Remaining,
		Active:         t.Active,
		CompletedFocus: t.CompletedFocus,
	}
	if t.Active {
		s.StartedAt = t.StartedAt
		s.Remaining -= uc.now().Sub(t.StartedAt)
	}

	sessions := t.CompletedFocus
	if t.Mode == model.ModeFocus && t.Remaining > 0 {
		sessions++
	}
	s.Next = nextMode(t.Mode, sessions)
	return s
}

// nextMode alternates focus with breaks. sessions counts focus sessions
// including the current one; every FocusSessionsPerLongBreak-th earns a long break.
func nextMode(current model.PomodoroMode, sessions int) model.PomodoroMode {
	if current != model.ModeFocus {
		return model.ModeFocus
	}
	if sessions > 0 && sessions%model.FocusSessionsPerLongBreak == 0 {
		return model.ModeLongBreak
	}
	return model.ModeShortBreak
}
