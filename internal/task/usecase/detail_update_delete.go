package usecase

import (
	"context"
	"strings"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	repo "taskflow-pro/internal/task/repository"
)

// Detail retrieves a single task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.getOwned(ctx, sc, id)
}

// Update applies the non-nil fields of input. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	t, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.DueDate != nil {
		t.DueDate = *input.DueDate
	}
	if input.DueTime != nil {
		t.DueTime = *input.DueTime
	}
	setStatus(&t, t.EffectiveStatus())

	if err := uc.validateFields(t); err != nil {
		return model.Task{}, err
	}
	return uc.save(ctx, t)
}

// Delete removes a task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
