package usecase

import (
	"context"

	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/taskparse"
)

func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) taskparse.TaskDraft {
	ref := uc.refOrNow(input.Ref)
	if input.Date != "" {
		if day, err := datemath.ParseDate(input.Date, uc.dateMath.Location()); err == nil {
			ref = day
		} else {
			uc.l.Debugf(ctx, "uc.Parse: ignoring reference date %q: %v", input.Date, err)
		}
	}
	return taskparse.Extract(input.Text, ref)
}
