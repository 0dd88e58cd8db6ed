package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-pro/internal/model"
)

func TestGetAndSaveTimer(t *testing.T) {
	r := New(0, 0)
	ctx := context.Background()

	_, ok, err := r.GetTimer(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	want := model.PomodoroTimer{Mode: model.ModeShortBreak, Remaining: time.Minute, CompletedFocus: 2}
	require.NoError(t, r.SaveTimer(ctx, "u1", want))

	got, ok, err := r.GetTimer(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestTimerExpires(t *testing.T) {
	r := New(10, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, r.SaveTimer(ctx, "u1", model.NewPomodoroTimer(model.ModeFocus)))
	assert.Eventually(t, func() bool {
		_, ok, _ := r.GetTimer(ctx, "u1")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestTimerEvictsOldest(t *testing.T) {
	r := New(1, time.Hour)
	ctx := context.Background()

	require.NoError(t, r.SaveTimer(ctx, "u1", model.NewPomodoroTimer(model.ModeFocus)))
	require.NoError(t, r.SaveTimer(ctx, "u2", model.NewPomodoroTimer(model.ModeFocus)))

	_, ok, _ := r.GetTimer(ctx, "u1")
	assert.False(t, ok)
	_, ok, _ = r.GetTimer(ctx, "u2")
	assert.True(t, ok)
}
