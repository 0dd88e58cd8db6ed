package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	subtasks, err := encodeSubtasks(opt.Subtasks)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	query := r.q(`
		INSERT INTO tasks (id, user_id, title, description, priority, category, status, completed,
			due_date, due_time, subtasks, calendar_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING ` + taskColumns)

	now := r.now()
	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Description, string(opt.Priority), string(opt.Category),
		string(opt.Status), opt.Completed, opt.DueDate, opt.DueTime, subtasks, opt.CalendarLink, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := r.q(fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods))

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks and the total count before pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, whereArgs := r.buildFilter(opt)

	var total int
	countQuery := r.q(fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where))
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := r.q(fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// CountTasks returns how many tasks a user owns.
func (r *implRepository) CountTasks(ctx context.Context, userID string) (int, error) {
	var count int
	query := r.q(`SELECT COUNT(*) FROM tasks WHERE user_id = $1`)
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, repo.ErrFailedToCount
	}
	return count, nil
}

// UpdateTask replaces a Task's mutable columns and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	subtasks, err := encodeSubtasks(opt.Subtasks)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	query := r.q(`
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, category = $4, status = $5, completed = $6,
			due_date = $7, due_time = $8, subtasks = $9, calendar_link = $10, updated_at = $11
		WHERE id = $12 AND user_id = $13
		RETURNING ` + taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, string(opt.Priority), string(opt.Category), string(opt.Status), opt.Completed,
		opt.DueDate, opt.DueTime, subtasks, opt.CalendarLink, r.now(), opt.ID, opt.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task owned by opt.UserID.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	query := r.q(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`)
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
