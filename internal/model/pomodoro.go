package model

import (
	"fmt"
	"time"
)

// PomodoroMode is one of the timer phases.
type PomodoroMode string

const (
	ModeFocus      PomodoroMode = "focus"
	ModeShortBreak PomodoroMode = "short_break"
	ModeLongBreak  PomodoroMode = "long_break"
)

// FocusSessionsPerLongBreak is how many completed focus sessions earn a long break.
const FocusSessionsPerLongBreak = 4

type PomodoroModeInfo struct {
	ID       PomodoroMode  `json:"id"`
	Label    string        `json:"label"`
	Duration time.Duration `json:"duration"`
}

// PomodoroModes lists the phases in display order.
var PomodoroModes = []PomodoroModeInfo{
	{ID: ModeFocus, Label: "Focus", Duration: 25 * time.Minute},
	{ID: ModeShortBreak, Label: "Short Break", Duration: 5 * time.Minute},
	{ID: ModeLongBreak, Label: "Long Break", Duration: 15 * time.Minute},
}

// LookupPomodoroMode returns the info for id.
func LookupPomodoroMode(id PomodoroMode) (PomodoroModeInfo, bool) {
	for _, m := range PomodoroModes {
		if m.ID == id {
			return m, true
		}
	}
	return PomodoroModeInfo{}, false
}

// PomodoroTimer is the stored timer of a user. While Active, Remaining is
// the time left at StartedAt; otherwise it is the time left now.
type PomodoroTimer struct {
	Mode           PomodoroMode
	Remaining      time.Duration
	Active         bool
	StartedAt      time.Time
	CompletedFocus int
}

// NewPomodoroTimer returns an idle timer at the full length of mode.
func NewPomodoroTimer(mode PomodoroMode) PomodoroTimer {
	info, _ := LookupPomodoroMode(mode)
	return PomodoroTimer{Mode: mode, Remaining: info.Duration}
}

// PomodoroState is a timer as observed at a point in time.
type PomodoroState struct {
	Mode           PomodoroModeInfo
	Remaining      time.Duration
	Active         bool
	StartedAt      time.Time
	CompletedFocus int
	Next           PomodoroMode
}

// Clock renders the remaining time as MM:SS.
func (s PomodoroState) Clock() string {
	secs := int(s.Remaining.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Progress is the elapsed fraction of the current phase, from 0 to 1.
func (s PomodoroState) Progress() float64 {
	if s.Mode.Duration <= 0 {
		return 0
	}
	return 1 - float64(s.Remaining)/float64(s.Mode.Duration)
}
