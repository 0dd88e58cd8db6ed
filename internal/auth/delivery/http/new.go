package http

import (
	"taskflow-pro/internal/auth"
	"taskflow-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates the HTTP handler for sign-in.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
