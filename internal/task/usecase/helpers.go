package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	repo "taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/checklist"
	"taskflow-pro/pkg/datemath"
)

const timeLayout = "15:04"

// getOwned loads a task belonging to sc. Tasks of other users are not found.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// save writes every mutable field of t back to the store.
func (uc *implUseCase) save(ctx context.Context, t model.Task) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           t.ID,
		UserID:       t.UserID,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     t.Priority,
		Category:     t.Category,
		Status:       t.Status,
		Completed:    t.Completed,
		DueDate:      t.DueDate,
		DueTime:      t.DueTime,
		Subtasks:     t.Subtasks,
		CalendarLink: t.CalendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.save UpdateTask: %v", err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return updated, nil
}

// listAll returns every task of the user, newest first.
func (uc *implUseCase) listAll(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.listAll ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (uc *implUseCase) validateDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := datemath.ParseDate(s, uc.dateMath.Location()); err != nil {
		return task.ErrInvalidDueDate
	}
	return nil
}

func validateDueTime(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != len(timeLayout) {
		return task.ErrInvalidDueTime
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return task.ErrInvalidDueTime
	}
	return nil
}

// validateFields checks the user-editable fields of t.
func (uc *implUseCase) validateFields(t model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return task.ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return task.ErrInvalidPriority
	}
	if !t.Category.IsValid() {
		return task.ErrInvalidCategory
	}
	if !t.Status.IsValid() {
		return task.ErrInvalidStatus
	}
	if err := uc.validateDueDate(t.DueDate); err != nil {
		return err
	}
	return validateDueTime(t.DueTime)
}

// setStatus moves t to status and keeps completion in step.
func setStatus(t *model.Task, status model.Status) {
	t.Status = status
	t.Completed = status == model.StatusDone
}

func newSubtasks(texts []string) []model.Subtask {
	out := make([]model.Subtask, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, model.Subtask{ID: uuid.NewString(), Text: text})
	}
	return out
}

// subtasksFromChecklist turns markdown checkbox items into subtasks.
func subtasksFromChecklist(items []checklist.Item) []model.Subtask {
	out := make([]model.Subtask, len(items))
	for i, it := range items {
		out[i] = model.Subtask{ID: uuid.NewString(), Text: it.Text, Completed: it.Checked}
	}
	return out
}

// refOrNow resolves a zero reference time to now, in the configured timezone.
func (uc *implUseCase) refOrNow(ref time.Time) time.Time {
	if ref.IsZero() {
		return uc.dateMath.Now()
	}
	return ref.In(uc.dateMath.Location())
}
