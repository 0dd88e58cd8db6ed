package http

import (
	"taskflow-pro/internal/pomodoro"
	"taskflow-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc pomodoro.UseCase
}

// New creates the HTTP handler for the pomodoro timer.
func New(l log.Logger, uc pomodoro.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
