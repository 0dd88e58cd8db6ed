package usecase

import (
	"cmp"
	"context"
	"slices"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
)

// Board groups the caller's tasks into kanban columns.
func (uc *implUseCase) Board(ctx context.Context, sc model.Scope) (task.BoardOutput, error) {
	tasks, err := uc.listAll(ctx, sc)
	if err != nil {
		return task.BoardOutput{}, err
	}

	byStatus := make(map[model.Status][]model.Task, len(model.Statuses))
	for _, t := range tasks {
		s := t.EffectiveStatus()
		byStatus[s] = append(byStatus[s], t)
	}

	out := task.BoardOutput{Columns: make([]task.BoardColumn, 0, len(model.Statuses))}
	for _, s := range model.Statuses {
		column := byStatus[s]
		slices.SortStableFunc(column, compareBoard)
		if column == nil {
			column = []model.Task{}
		}
		out.Columns = append(out.Columns, task.BoardColumn{Status: s, Tasks: column})
	}
	return out, nil
}

// compareBoard orders by priority, then due date with undated tasks last.
func compareBoard(a, b model.Task) int {
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}
	switch {
	case a.DueDate == b.DueDate:
		return 0
	case a.DueDate == "":
		return 1
	case b.DueDate == "":
		return -1
	}
	return cmp.Compare(a.DueDate, b.DueDate)
}
