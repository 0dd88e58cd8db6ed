package usecase

import (
	"context"
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	repo "taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/gcalendar"
)

// Calendar lists every day of the month with the tasks due on it. Users with
// the calendar feature also see their Google Calendar events. A zero input
// selects the current month.
func (uc *implUseCase) Calendar(ctx context.Context, sc model.Scope, input task.CalendarInput) (task.CalendarOutput, error) {
	if input.Year == 0 && input.Month == 0 {
		now := uc.dateMath.Now()
		input.Year, input.Month = now.Year(), now.Month()
	}
	if input.Year < 1 || input.Month < time.January || input.Month > time.December {
		return task.CalendarOutput{}, task.ErrInvalidMonth
	}

	loc := uc.dateMath.Location()
	first := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		DueFrom: datemath.FormatDate(first),
		DueTo:   datemath.FormatDate(last),
		OrderBy: "due_date, due_time, id",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Calendar ListTasks: %v", err)
		return task.CalendarOutput{}, err
	}

	byDate := make(map[string][]model.Task)
	for _, t := range tasks {
		byDate[t.DueDate] = append(byDate[t.DueDate], t)
	}
	events := uc.externalEvents(ctx, sc, first, last.AddDate(0, 0, 1))

	out := task.CalendarOutput{Year: input.Year, Month: input.Month}
	for d := first; d.Month() == input.Month; d = d.AddDate(0, 0, 1) {
		date := datemath.FormatDate(d)
		day := task.CalendarDay{Date: date, Tasks: byDate[date], Events: events[date]}
		if day.Tasks == nil {
			day.Tasks = []model.Task{}
		}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

// externalEvents fetches Google Calendar events in [from, to) keyed by date.
// Any failure yields no events.
func (uc *implUseCase) externalEvents(ctx context.Context, sc model.Scope, from, to time.Time) map[string][]task.ExternalEvent {
	if uc.calendar == nil {
		return nil
	}
	allowed, err := uc.sub.HasFeature(ctx, sc, model.FeatureCalendar)
	if err != nil || !allowed {
		return nil
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.externalEvents ListEvents: %v", err)
		return nil
	}

	out := make(map[string][]task.ExternalEvent)
	for _, e := range events {
		date := e.StartTime.Format(datemath.DateFormatISO)
		if !e.AllDay {
			date = datemath.FormatDate(e.StartTime.In(uc.dateMath.Location()))
		}
		out[date] = append(out[date], task.ExternalEvent{
			ID:     e.ID,
			Title:  e.Summary,
			Start:  e.StartTime,
			AllDay: e.AllDay,
			Link:   e.HtmlLink,
		})
	}
	return out
}
