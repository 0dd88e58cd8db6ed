package http

import (
	"errors"
	"net/http"

	"taskflow-pro/internal/organization"
	pkgErrors "taskflow-pro/pkg/errors"
)

var (
	errEmptyName             = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 120001, "name is required")
	errOrganizationNotFound  = pkgErrors.NewHTTPErrorWithCode(http.StatusNotFound, 120002, "organization not found")
	errNotMember             = pkgErrors.NewHTTPErrorWithCode(http.StatusForbidden, 120003, "you are not a member of this organization")
	errNoCurrentOrganization = pkgErrors.NewHTTPErrorWithCode(http.StatusConflict, 120004, "no organization selected")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, organization.ErrEmptyName):
		return errEmptyName
	case errors.Is(err, organization.ErrOrganizationNotFound):
		return errOrganizationNotFound
	case errors.Is(err, organization.ErrNotMember):
		return errNotMember
	case errors.Is(err, organization.ErrNoCurrentOrganization):
		return errNoCurrentOrganization
	}
	return pkgErrors.ErrInternalServerError
}
