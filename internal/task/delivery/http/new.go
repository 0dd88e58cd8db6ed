package http

import (
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates the HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
