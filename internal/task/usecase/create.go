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
	"taskflow-pro/pkg/gcalendar"
)

const defaultEventDuration = time.Hour

// Create validates and stores a new task, enforcing the plan's task quota.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	t := model.Task{
		UserID:      sc.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Priority:    input.Priority,
		Category:    input.Category,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Category == "" {
		t.Category = model.CategoryPersonal
	}
	status := input.Status
	if status == "" {
		status = model.StatusTodo
	}
	setStatus(&t, status)

	if err := uc.validateFields(t); err != nil {
		return model.Task{}, err
	}

	// Count and insert run under the user's lock; the quota holds per process.
	unlock := uc.quota.Lock(sc.UserID)
	defer unlock()

	count, err := uc.repo.CountTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CountTasks: %v", err)
		return model.Task{}, err
	}
	ok, err := uc.sub.CanAddTask(ctx, sc, count)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CanAddTask: %v", err)
		return model.Task{}, err
	}
	if !ok {
		return model.Task{}, task.ErrTaskLimitReached
	}

	t.ID = uuid.NewString()
	t.Subtasks = newSubtasks(input.Subtasks)
	if len(t.Subtasks) == 0 {
		if items := checklist.Parse(t.Description); len(items) > 0 {
			t.Subtasks = subtasksFromChecklist(items)
			t.Description = checklist.Strip(t.Description)
		}
	}
	t.CalendarLink = uc.syncCalendar(ctx, sc, t)

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
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
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}
	return created, nil
}

// syncCalendar mirrors a dated task into Google Calendar and returns the
// event link. Failures are logged and yield an empty link.
func (uc *implUseCase) syncCalendar(ctx context.Context, sc model.Scope, t model.Task) string {
	if uc.calendar == nil || t.DueDate == "" {
		return ""
	}

	allowed, err := uc.sub.HasFeature(ctx, sc, model.FeatureCalendar)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar HasFeature: %v", err)
		return ""
	}
	if !allowed {
		return ""
	}

	loc := uc.dateMath.Location()
	start, err := datemath.ParseDate(t.DueDate, loc)
	if err != nil {
		return ""
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		AllDay:      t.DueTime == "",
		Timezone:    loc.String(),
	}
	if t.DueTime != "" {
		clock, _ := time.Parse(timeLayout, t.DueTime)
		req.StartTime = time.Date(start.Year(), start.Month(), start.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
		req.EndTime = req.StartTime.Add(defaultEventDuration)
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar CreateEvent: %v", err)
		return ""
	}
	uc.l.Infof(ctx, "uc.syncCalendar: created event %s for task %s", event.ID, t.ID)
	return event.HtmlLink
}
