package sqldb

import (
	"fmt"
	"strings"

	repo "taskflow-pro/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildFilter(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(description) LIKE $%d)", idx, idx))
		args = append(args, "%"+strings.ToLower(opt.Search)+"%")
		idx++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, string(opt.Category))
		idx++
	}
	if opt.DueFrom != "" {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", idx))
		args = append(args, opt.DueFrom)
		idx++
	}
	if opt.DueTo != "" {
		conditions = append(conditions, fmt.Sprintf("due_date <> '' AND due_date <= $%d", idx))
		args = append(args, opt.DueTo)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	idx := len(args) + 1

	parts := []string{"WHERE " + where}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC, id"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
		if opt.Offset > 0 {
			parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}
