package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
)

func (uc *implUseCase) AddSubtask(ctx context.Context, sc model.Scope, input task.AddSubtaskInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptySubtask
	}

	t, err := uc.getOwned(ctx, sc, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	t.Subtasks = append(t.Subtasks, model.Subtask{ID: uuid.NewString(), Text: text})
	return uc.save(ctx, t)
}

func (uc *implUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error) {
	t, err := uc.getOwned(ctx, sc, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	i := indexSubtask(t.Subtasks, input.SubtaskID)
	if i < 0 {
		return model.Task{}, task.ErrSubtaskNotFound
	}
	t.Subtasks[i].Completed = !t.Subtasks[i].Completed
	return uc.save(ctx, t)
}

func (uc *implUseCase) DeleteSubtask(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error) {
	t, err := uc.getOwned(ctx, sc, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	i := indexSubtask(t.Subtasks, input.SubtaskID)
	if i < 0 {
		return model.Task{}, task.ErrSubtaskNotFound
	}
	t.Subtasks = slices.Delete(t.Subtasks, i, i+1)
	return uc.save(ctx, t)
}

func indexSubtask(subtasks []model.Subtask, id string) int {
	return slices.IndexFunc(subtasks, func(s model.Subtask) bool { return s.ID == id })
}
