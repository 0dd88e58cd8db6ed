package http

import (
	"time"

	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/response"
	"taskflow-pro/pkg/taskparse"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    string   `json:"category"`
	Status      string   `json:"status"      binding:"omitempty,oneof=todo in_progress done"`
	DueDate     string   `json:"due_date"`
	DueTime     string   `json:"due_time"`
	Subtasks    []string `json:"subtasks"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Category:    model.Category(r.Category),
		Status:      model.Status(r.Status),
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Subtasks:    r.Subtasks,
	}
}

type listReq struct {
	Filter   string `form:"filter"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Filter:   task.Filter(r.Filter),
		Search:   r.Search,
		Category: r.Category,
		Limit:    limit,
		Offset:   offset,
	}
}

type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
	DueTime     *string `json:"due_time"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	return in
}

type moveReq struct {
	Status string `json:"status" binding:"required"`
}

type subtaskReq struct {
	Text string `json:"text" binding:"required,max=255"`
}

type calendarReq struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

type parseReq struct {
	Text string `json:"text" binding:"required"`
	Date string `json:"date"`
}

func (r parseReq) validate() error {
	if r.Date == "" {
		return nil
	}
	if _, err := datemath.ParseDate(r.Date, time.UTC); err != nil {
		return errInvalidDate
	}
	return nil
}

// --- Response DTOs ---

type subtaskResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type taskResp struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Priority     string            `json:"priority"`
	Category     string            `json:"category"`
	Status       string            `json:"status"`
	Completed    bool              `json:"completed"`
	DueDate      string            `json:"due_date,omitempty"`
	DueTime      string            `json:"due_time,omitempty"`
	Subtasks     []subtaskResp     `json:"subtasks"`
	CalendarLink string            `json:"calendar_link,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	subtasks := make([]subtaskResp, len(t.Subtasks))
	for i, s := range t.Subtasks {
		subtasks[i] = subtaskResp{ID: s.ID, Text: s.Text, Completed: s.Completed}
	}
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     string(t.Priority),
		Category:     string(t.Category),
		Status:       string(t.EffectiveStatus()),
		Completed:    t.Completed,
		DueDate:      t.DueDate,
		DueTime:      t.DueTime,
		Subtasks:     subtasks,
		CalendarLink: t.CalendarLink,
		CreatedAt:    response.DateTime(t.CreatedAt),
		UpdatedAt:    response.DateTime(t.UpdatedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks:  newTaskResps(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type boardColumnResp struct {
	Status string     `json:"status"`
	Tasks  []taskResp `json:"tasks"`
}

type boardResp struct {
	Columns []boardColumnResp `json:"columns"`
}

func (h *handler) newBoardResp(out task.BoardOutput) boardResp {
	cols := make([]boardColumnResp, len(out.Columns))
	for i, c := range out.Columns {
		cols[i] = boardColumnResp{Status: string(c.Status), Tasks: newTaskResps(c.Tasks)}
	}
	return boardResp{Columns: cols}
}

type eventResp struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	AllDay bool      `json:"all_day"`
	Link   string    `json:"link,omitempty"`
}

type calendarDayResp struct {
	Date   string      `json:"date"`
	Tasks  []taskResp  `json:"tasks"`
	Events []eventResp `json:"events,omitempty"`
}

type calendarResp struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []calendarDayResp `json:"days"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	days := make([]calendarDayResp, len(out.Days))
	for i, d := range out.Days {
		day := calendarDayResp{Date: d.Date, Tasks: newTaskResps(d.Tasks)}
		for _, e := range d.Events {
			day.Events = append(day.Events, eventResp{ID: e.ID, Title: e.Title, Start: e.Start, AllDay: e.AllDay, Link: e.Link})
		}
		days[i] = day
	}
	return calendarResp{Year: out.Year, Month: int(out.Month), Days: days}
}

type statsResp struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Active              int `json:"active"`
	Today               int `json:"today"`
	Overdue             int `json:"overdue"`
	HighPriorityPending int `json:"high_priority_pending"`
	CompletionRate      int `json:"completion_rate"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp(out)
}

type categoriesResp struct {
	Categories []model.CategoryInfo `json:"categories"`
}

type parseResp struct {
	Draft taskparse.TaskDraft `json:"draft"`
}
