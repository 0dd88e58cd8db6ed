package usecase

import (
	"taskflow-pro/internal/subscription/repository"
	"taskflow-pro/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a subscription UseCase backed by repo.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}
