package usecase

import (
	"context"
	"strings"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	repo "taskflow-pro/internal/task/repository"
)

// List returns a page of the caller's tasks matching the filter, search and category.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repo.ListTasksOptions{
		UserID: sc.UserID,
		Search: strings.TrimSpace(input.Search),
		Limit:  input.Limit,
		Offset: input.Offset,
	}

	switch input.Filter {
	case "", task.FilterAll:
	case task.FilterActive:
		opt.Completed = new(bool)
	case task.FilterCompleted:
		done := true
		opt.Completed = &done
	default:
		return task.ListOutput{}, task.ErrInvalidFilter
	}

	if input.Category != "" && input.Category != task.CategoryAll {
		category := model.Category(input.Category)
		if !category.IsValid() {
			return task.ListOutput{}, task.ErrInvalidCategory
		}
		opt.Category = category
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
