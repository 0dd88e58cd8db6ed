package http

import (
	"taskflow-pro/internal/organization"
	"taskflow-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc organization.UseCase
}

// New creates the HTTP handler for organizations and teams.
func New(l log.Logger, uc organization.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
