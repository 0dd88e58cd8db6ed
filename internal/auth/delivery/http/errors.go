package http

import (
	"errors"
	"net/http"

	"taskflow-pro/internal/auth"
	pkgErrors "taskflow-pro/pkg/errors"
)

var errInvalidEmail = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 160001, "invalid email address")

func (h *handler) mapError(err error) error {
	if errors.Is(err, auth.ErrInvalidEmail) {
		return errInvalidEmail
	}
	return pkgErrors.ErrInternalServerError
}
