package http

import (
	"errors"
	"net/http"

	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/task"
	pkgErrors "taskflow-pro/pkg/errors"
)

var (
	errEmptyMessage     = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 150001, "message is empty")
	errFeatureLocked    = pkgErrors.NewHTTPErrorWithCode(http.StatusForbidden, 150002, "the chat assistant is available on the Premium plan")
	errTaskLimitReached = pkgErrors.NewHTTPErrorWithCode(http.StatusForbidden, 150003, "task limit reached, upgrade your plan to add more tasks")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrFeatureLocked):
		return errFeatureLocked
	case errors.Is(err, task.ErrTaskLimitReached):
		return errTaskLimitReached
	}
	return pkgErrors.ErrInternalServerError
}
