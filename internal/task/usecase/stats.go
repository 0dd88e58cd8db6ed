package usecase

import (
	"context"
	"math"
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/datemath"
)

// Stats summarises the caller's tasks relative to the day of ref.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, ref time.Time) (task.StatsOutput, error) {
	tasks, err := uc.listAll(ctx, sc)
	if err != nil {
		return task.StatsOutput{}, err
	}
	return computeStats(tasks, datemath.FormatDate(uc.refOrNow(ref))), nil
}

func computeStats(tasks []model.Task, today string) task.StatsOutput {
	var out task.StatsOutput
	out.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			out.Completed++
			continue
		}
		out.Active++
		if t.IsDueOn(today) {
			out.Today++
		}
		if t.IsOverdue(today) {
			out.Overdue++
		}
		if t.Priority == model.PriorityHigh {
			out.HighPriorityPending++
		}
	}
	if out.Total > 0 {
		out.CompletionRate = int(math.Round(float64(out.Completed) * 100 / float64(out.Total)))
	}
	return out
}
