package http

import (
	"errors"
	"net/http"

	"taskflow-pro/internal/pomodoro"
	pkgErrors "taskflow-pro/pkg/errors"
)

var errUnknownMode = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 140001, "mode must be focus, short_break or long_break")

func (h *handler) mapError(err error) error {
	if errors.Is(err, pomodoro.ErrUnknownMode) {
		return errUnknownMode
	}
	return pkgErrors.ErrInternalServerError
}
