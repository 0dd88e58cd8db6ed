package sqldb

import (
	"encoding/json"
	"fmt"

	"taskflow-pro/internal/model"
)

const taskColumns = `id, user_id, title, description, priority, category, status, completed,
	due_date, due_time, subtasks, calendar_link, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t           model.Task
		subtasksRaw []byte
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority, &t.Category, &t.Status, &t.Completed,
		&t.DueDate, &t.DueTime, &subtasksRaw, &t.CalendarLink, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	subtasks, err := decodeSubtasks(subtasksRaw)
	if err != nil {
		return model.Task{}, err
	}
	t.Subtasks = subtasks
	return t, nil
}

func encodeSubtasks(subtasks []model.Subtask) (string, error) {
	if subtasks == nil {
		subtasks = []model.Subtask{}
	}
	raw, err := json.Marshal(subtasks)
	if err != nil {
		return "", fmt.Errorf("encode subtasks: %w", err)
	}
	return string(raw), nil
}

func decodeSubtasks(raw []byte) ([]model.Subtask, error) {
	subtasks := []model.Subtask{}
	if len(raw) == 0 {
		return subtasks, nil
	}
	if err := json.Unmarshal(raw, &subtasks); err != nil {
		return nil, fmt.Errorf("decode subtasks: %w", err)
	}
	return subtasks, nil
}
