package usecase

import (
	"taskflow-pro/internal/subscription"
	"taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/gcalendar"
	"taskflow-pro/pkg/keylock"
	"taskflow-pro/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	sub        subscription.UseCase
	calendar   gcalendar.Calendar
	calendarID string
	dateMath   *datemath.Parser
	quota      *keylock.Striped
}

// New creates a task UseCase. calendar may be nil when Google Calendar is
// not configured.
func New(
	l log.Logger,
	repo repository.Repository,
	sub subscription.UseCase,
	calendar gcalendar.Calendar,
	calendarID string,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		sub:        sub,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		quota:      keylock.New(0),
	}
}
