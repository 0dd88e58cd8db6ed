package usecase

import (
	"math/rand/v2"

	"taskflow-pro/internal/chat/repository"
	"taskflow-pro/internal/subscription"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l        log.Logger
	task     task.UseCase
	sub      subscription.UseCase
	history  repository.Repository
	dateMath *datemath.Parser
	pick     func(n int) int
}

// New creates a chat UseCase.
func New(
	l log.Logger,
	taskUC task.UseCase,
	sub subscription.UseCase,
	history repository.Repository,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		task:     taskUC,
		sub:      sub,
		history:  history,
		dateMath: dateMath,
		pick:     rand.IntN,
	}
}
