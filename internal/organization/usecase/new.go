package usecase

import (
	"taskflow-pro/internal/organization/repository"
	"taskflow-pro/pkg/log"
)

// implUseCase is the private implementation of organization.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates an organization UseCase.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}
