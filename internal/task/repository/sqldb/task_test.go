package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/database"
	"taskflow-pro/pkg/log"
)

func setupRepo(t *testing.T) (*implRepository, context.Context) {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	db, err := database.Open(ctx, l, database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(ctx, l, db, database.DriverSQLite))

	r := New(db, database.DriverSQLite, l).(*implRepository)
	return r, ctx
}

func seed(t *testing.T, r *implRepository, ctx context.Context, opt repo.CreateTaskOptions) model.Task {
	t.Helper()
	if opt.Priority == "" {
		opt.Priority = model.PriorityMedium
	}
	if opt.Category == "" {
		opt.Category = model.CategoryPersonal
	}
	if opt.Status == "" {
		opt.Status = model.StatusTodo
	}
	created, err := r.CreateTask(ctx, opt)
	require.NoError(t, err)
	return created
}

func TestCreateAndGetTask(t *testing.T) {
	r, ctx := setupRepo(t)

	created := seed(t, r, ctx, repo.CreateTaskOptions{
		ID:       "t1",
		UserID:   "u1",
		Title:    "Write report",
		Priority: model.PriorityHigh,
		Category: model.CategoryWork,
		DueDate:  "2026-10-19",
		DueTime:  "15:00",
		Subtasks: []model.Subtask{{ID: "s1", Text: "outline"}},
	})
	assert.Equal(t, "t1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "t1", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, model.CategoryWork, got.Category)
	assert.Equal(t, "2026-10-19", got.DueDate)
	assert.Equal(t, "15:00", got.DueTime)
	assert.Equal(t, []model.Subtask{{ID: "s1", Text: "outline"}}, got.Subtasks)
}

func TestGetOneTask_NotFound(t *testing.T) {
	r, ctx := setupRepo(t)
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "t1", UserID: "u1", Title: "mine"})

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "t1", UserID: "someone-else"})
	require.NoError(t, err)
	assert.Equal(t, "", got.ID)

	got, err = r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, "", got.ID)
}

func TestListTasks_Filters(t *testing.T) {
	r, ctx := setupRepo(t)
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "a", UserID: "u1", Title: "Gym session", Category: model.CategoryHealth, DueDate: "2026-10-01"})
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "b", UserID: "u1", Title: "Pay rent", Description: "October", Category: model.CategoryFinance, Completed: true, Status: model.StatusDone, DueDate: "2026-10-31"})
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "c", UserID: "u1", Title: "Read book", Category: model.CategoryEducation})
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "d", UserID: "u2", Title: "Other user"})

	completed := true
	active := false

	tests := []struct {
		name    string
		opt     repo.ListTasksOptions
		wantIDs []string
	}{
		{"all for user", repo.ListTasksOptions{UserID: "u1", OrderBy: "id"}, []string{"a", "b", "c"}},
		{"completed", repo.ListTasksOptions{UserID: "u1", Completed: &completed}, []string{"b"}},
		{"active", repo.ListTasksOptions{UserID: "u1", Completed: &active, OrderBy: "id"}, []string{"a", "c"}},
		{"search description case-insensitive", repo.ListTasksOptions{UserID: "u1", Search: "OCTOBER"}, []string{"b"}},
		{"category", repo.ListTasksOptions{UserID: "u1", Category: model.CategoryHealth}, []string{"a"}},
		{"due range excludes undated", repo.ListTasksOptions{UserID: "u1", DueFrom: "2026-10-01", DueTo: "2026-10-31", OrderBy: "id"}, []string{"a", "b"}},
		{"pagination", repo.ListTasksOptions{UserID: "u1", OrderBy: "id", Limit: 1, Offset: 1}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, _, err := r.ListTasks(ctx, tt.opt)
			require.NoError(t, err)
			ids := make([]string, len(tasks))
			for i, task := range tasks {
				ids[i] = task.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	_, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestCountTasks(t *testing.T) {
	r, ctx := setupRepo(t)
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "a", UserID: "u1", Title: "one"})
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "b", UserID: "u1", Title: "two"})

	count, err := r.CountTasks(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = r.CountTasks(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpdateTask(t *testing.T) {
	r, ctx := setupRepo(t)
	created := seed(t, r, ctx, repo.CreateTaskOptions{ID: "t1", UserID: "u1", Title: "draft"})

	later := created.UpdatedAt.Add(time.Minute)
	r.now = func() time.Time { return later }

	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        "t1",
		UserID:    "u1",
		Title:     "final",
		Priority:  model.PriorityLow,
		Category:  model.CategoryOther,
		Status:    model.StatusDone,
		Completed: true,
		Subtasks:  []model.Subtask{{ID: "s1", Text: "check", Completed: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.True(t, updated.Completed)
	assert.Equal(t, model.StatusDone, updated.Status)
	assert.True(t, updated.Subtasks[0].Completed)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "t1", UserID: "u2", Title: "hijack"})
	require.NoError(t, err)
	assert.Equal(t, "", missing.ID)
}

func TestDeleteTask(t *testing.T) {
	r, ctx := setupRepo(t)
	seed(t, r, ctx, repo.CreateTaskOptions{ID: "t1", UserID: "u1", Title: "temp"})

	require.NoError(t, r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: "t1", UserID: "u2"}))
	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	require.NoError(t, r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: "t1", UserID: "u1"}))
	got, err = r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "", got.ID)
}

func TestLegacyRowWithoutStatus(t *testing.T) {
	r, ctx := setupRepo(t)
	_, err := r.db.ExecContext(ctx, `INSERT INTO tasks (id, user_id, title, completed) VALUES ('old', 'u1', 'legacy', 1)`)
	require.NoError(t, err)

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "old"})
	require.NoError(t, err)
	assert.Equal(t, model.Status(""), got.Status)
	assert.Equal(t, model.StatusDone, got.EffectiveStatus())
	assert.Empty(t, got.Subtasks)
}
