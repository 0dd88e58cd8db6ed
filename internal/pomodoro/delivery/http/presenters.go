package http

import (
	"time"

	"taskflow-pro/internal/model"
)

type modeReq struct {
	Mode string `json:"mode" binding:"required"`
}

type modeResp struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DurationSeconds int    `json:"duration_seconds"`
}

func newModeResp(m model.PomodoroModeInfo) modeResp {
	return modeResp{ID: string(m.ID), Label: m.Label, DurationSeconds: int(m.Duration / time.Second)}
}

type modesResp struct {
	Modes []modeResp `json:"modes"`
}

func newModesResp(modes []model.PomodoroModeInfo) modesResp {
	resp := modesResp{Modes: make([]modeResp, 0, len(modes))}
	for _, m := range modes {
		resp.Modes = append(resp.Modes, newModeResp(m))
	}
	return resp
}

type stateResp struct {
	Mode             modeResp   `json:"mode"`
	RemainingSeconds int        `json:"remaining_seconds"`
	Display          string     `json:"display"`
	Progress         float64    `json:"progress"`
	Active           bool       `json:"active"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedFocus   int        `json:"completed_focus"`
	NextMode         string     `json:"next_mode"`
}

func newStateResp(s model.PomodoroState) stateResp {
	resp := stateResp{
		Mode:             newModeResp(s.Mode),
		RemainingSeconds: int(s.Remaining.Round(time.Second) / time.Second),
		Display:          s.Clock(),
		Progress:         s.Progress(),
		Active:           s.Active,
		CompletedFocus:   s.CompletedFocus,
		NextMode:         string(s.Next),
	}
	if !s.StartedAt.IsZero() {
		started := s.StartedAt
		resp.StartedAt = &started
	}
	return resp
}
