package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/datemath"
)

type sampleTask struct {
	title       string
	description string
	priority    model.Priority
	category    model.Category
	dayOffset   int
	dueTime     string
	done        bool
	subtasks    []model.Subtask
}

var samples = []sampleTask{
	{
		title:       "Design new landing page mockup",
		description: "Create high-fidelity designs for the new marketing site",
		priority:    model.PriorityHigh,
		category:    model.CategoryWork,
		dueTime:     "14:00",
		subtasks: []model.Subtask{
			{Text: "Research competitors", Completed: true},
			{Text: "Create wireframes"},
		},
	},
	{
		title:       "Review pull requests",
		description: "Code review for authentication module",
		priority:    model.PriorityMedium,
		category:    model.CategoryWork,
		dueTime:     "16:00",
	},
	{
		title:       "Weekly team standup meeting",
		description: "Discuss project progress and blockers",
		priority:    model.PriorityMedium,
		category:    model.CategoryWork,
		dayOffset:   1,
		dueTime:     "10:00",
	},
	{
		title:       "Grocery shopping",
		description: "Buy ingredients for dinner",
		priority:    model.PriorityLow,
		category:    model.CategoryPersonal,
		dayOffset:   -1,
		dueTime:     "18:00",
		done:        true,
	},
	{
		title:       "Submit tax documents",
		description: "File quarterly tax returns",
		priority:    model.PriorityHigh,
		category:    model.CategoryFinance,
		dayOffset:   -2,
		dueTime:     "17:00",
	},
	{
		title:       `Read "Atomic Habits"`,
		description: "Finish reading chapter 5-8",
		priority:    model.PriorityLow,
		category:    model.CategoryEducation,
		dayOffset:   3,
		dueTime:     "20:00",
	},
}

// SeedSamples stores the demo tasks for a user who has none. It returns how
// many tasks were created.
func (uc *implUseCase) SeedSamples(ctx context.Context, sc model.Scope, ref time.Time) (int, error) {
	unlock := uc.quota.Lock(sc.UserID)
	defer unlock()

	count, err := uc.repo.CountTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SeedSamples CountTasks: %v", err)
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	ref = uc.refOrNow(ref)
	for i, s := range samples {
		status := model.StatusTodo
		if s.done {
			status = model.StatusDone
		}
		subtasks := make([]model.Subtask, len(s.subtasks))
		for j, st := range s.subtasks {
			st.ID = uuid.NewString()
			subtasks[j] = st
		}

		_, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
			ID:          uuid.NewString(),
			UserID:      sc.UserID,
			Title:       s.title,
			Description: s.description,
			Priority:    s.priority,
			Category:    s.category,
			Status:      status,
			Completed:   s.done,
			DueDate:     datemath.FormatDate(ref.AddDate(0, 0, s.dayOffset)),
			DueTime:     s.dueTime,
			Subtasks:    subtasks,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.SeedSamples CreateTask: %v", err)
			return i, err
		}
	}

	uc.l.Infof(ctx, "uc.SeedSamples: seeded %d tasks for user %s", len(samples), sc.UserID)
	return len(samples), nil
}
