package usecase

import (
	"time"

	"taskflow-pro/internal/organization"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/log"
	"taskflow-pro/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l     log.Logger
	jwt   scope.Manager
	tasks task.UseCase
	orgs  organization.UseCase
	seed  bool
	now   func() time.Time
}

// New creates an auth UseCase. When seed is set, first-time users receive
// the demo sample tasks.
func New(l log.Logger, jwtManager scope.Manager, tasks task.UseCase, orgs organization.UseCase, seed bool) *implUseCase {
	return &implUseCase{
		l:     l,
		jwt:   jwtManager,
		tasks: tasks,
		orgs:  orgs,
		seed:  seed,
		now:   time.Now,
	}
}
