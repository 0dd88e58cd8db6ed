package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/middleware"
	"taskflow-pro/internal/model"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task for the caller. Free plans are limited to 10 tasks.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Task limit reached"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, newest first.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       filter   query string false "all, active or completed"
// @Param       search   query string false "Case-insensitive title/description match"
// @Param       category query string false "Category id or all"
// @Param       limit    query int    false "Page size (default: 50)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	t, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are left unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	t, err := h.uc.Toggle(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Move godoc
// @Summary     Move a task to a kanban column
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string  true "Task ID"
// @Param       body body moveReq true "Target status"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PUT]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Move(ctx, sc, task.MoveInput{ID: c.Param("id"), Status: model.Status(req.Status)})
	if err != nil {
		h.l.Warnf(ctx, "uc.Move: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// AddSubtask godoc
// @Summary     Add a subtask
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string     true "Task ID"
// @Param       body body subtaskReq true "Subtask"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) AddSubtask(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processSubtaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.AddSubtask(ctx, sc, task.AddSubtaskInput{TaskID: c.Param("id"), Text: req.Text})
	if err != nil {
		h.l.Warnf(ctx, "uc.AddSubtask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// ToggleSubtask godoc
// @Summary     Toggle a subtask
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id         path string true "Task ID"
// @Param       subtask_id path string true "Subtask ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/subtasks/{subtask_id}/toggle [POST]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	t, err := h.uc.ToggleSubtask(ctx, sc, task.SubtaskInput{TaskID: c.Param("id"), SubtaskID: c.Param("subtask_id")})
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleSubtask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// DeleteSubtask godoc
// @Summary     Delete a subtask
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id         path string true "Task ID"
// @Param       subtask_id path string true "Subtask ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/subtasks/{subtask_id} [DELETE]
func (h *handler) DeleteSubtask(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	t, err := h.uc.DeleteSubtask(ctx, sc, task.SubtaskInput{TaskID: c.Param("id"), SubtaskID: c.Param("subtask_id")})
	if err != nil {
		h.l.Warnf(ctx, "uc.DeleteSubtask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Board godoc
// @Summary     Kanban board
// @Description Tasks grouped by status, highest priority and earliest due date first.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Success     200 {object} boardResp
// @Router      /api/v1/tasks/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	out, err := h.uc.Board(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBoardResp(out))
}

// Calendar godoc
// @Summary     Month calendar
// @Description Every day of the month with its tasks. Defaults to the current month.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       year  query int false "Year"
// @Param       month query int false "Month 1-12"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Calendar(ctx, sc, task.CalendarInput{Year: req.Year, Month: time.Month(req.Month)})
	if err != nil {
		h.l.Warnf(ctx, "uc.Calendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(out))
}

// Stats godoc
// @Summary     Task statistics
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Success     200 {object} statsResp
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	out, err := h.uc.Stats(ctx, sc, time.Time{})
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(out))
}

// Parse godoc
// @Summary     Extract task fields from text
// @Description Runs the natural-language extractor without saving anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body parseReq true "Free text and optional reference date"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	draft := h.uc.Parse(ctx, task.ParseInput{Text: req.Text, Date: req.Date})
	response.OK(c, parseResp{Draft: draft})
}

// Categories godoc
// @Summary     Category catalogue
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, categoriesResp{Categories: model.Categories})
}
