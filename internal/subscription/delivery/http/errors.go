package http

import (
	"errors"
	"net/http"

	"taskflow-pro/internal/subscription"
	pkgErrors "taskflow-pro/pkg/errors"
)

var errUnknownTier = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 130001, "unknown subscription tier")

func (h *handler) mapError(err error) error {
	if errors.Is(err, subscription.ErrUnknownTier) {
		return errUnknownTier
	}
	return pkgErrors.ErrInternalServerError
}
