package usecase

import (
	"time"

	"taskflow-pro/internal/pomodoro/repository"
	"taskflow-pro/pkg/keylock"
	"taskflow-pro/pkg/log"
)

// implUseCase is the private implementation of pomodoro.UseCase.
type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	now   func() time.Time
	locks *keylock.Striped
}

// New creates a pomodoro UseCase.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		now:   time.Now,
		locks: keylock.New(0),
	}
}
