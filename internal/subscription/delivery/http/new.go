package http

import (
	"taskflow-pro/internal/subscription"
	"taskflow-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc subscription.UseCase
}

// New creates the HTTP handler for plans and upgrades.
func New(l log.Logger, uc subscription.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
