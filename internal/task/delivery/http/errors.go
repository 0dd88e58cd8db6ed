package http

import (
	"errors"
	"net/http"

	"taskflow-pro/internal/task"
	pkgErrors "taskflow-pro/pkg/errors"
)

var (
	errTaskNotFound     = pkgErrors.NewHTTPErrorWithCode(http.StatusNotFound, 110001, "task not found")
	errSubtaskNotFound  = pkgErrors.NewHTTPErrorWithCode(http.StatusNotFound, 110002, "subtask not found")
	errTaskLimitReached = pkgErrors.NewHTTPErrorWithCode(http.StatusForbidden, 110003, "task limit reached, upgrade your plan to add more tasks")
	errMissingID        = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 110004, "id is required")
	errInvalidDate      = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 110005, "date must be YYYY-MM-DD")
)

// validationErrors are returned to clients with their own message.
var validationErrors = []error{
	task.ErrEmptyTitle,
	task.ErrEmptySubtask,
	task.ErrInvalidPriority,
	task.ErrInvalidCategory,
	task.ErrInvalidStatus,
	task.ErrInvalidFilter,
	task.ErrInvalidDueDate,
	task.ErrInvalidDueTime,
	task.ErrInvalidMonth,
}

// mapError translates use-case errors into HTTP errors. Anything unknown is
// reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrSubtaskNotFound):
		return errSubtaskNotFound
	case errors.Is(err, task.ErrTaskLimitReached):
		return errTaskLimitReached
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 110000, target.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
