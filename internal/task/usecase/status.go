package usecase

import (
	"context"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
)

func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return model.Task{}, err
	}

	if t.Completed {
		setStatus(&t, model.StatusTodo)
	} else {
		setStatus(&t, model.StatusDone)
	}
	return uc.save(ctx, t)
}

func (uc *implUseCase) Move(ctx context.Context, sc model.Scope, input task.MoveInput) (model.Task, error) {
	if !input.Status.IsValid() {
		return model.Task{}, task.ErrInvalidStatus
	}

	t, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	setStatus(&t, input.Status)
	return uc.save(ctx, t)
}
