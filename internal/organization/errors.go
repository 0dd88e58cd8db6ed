package organization

import "errors"

var (
	ErrEmptyName             = errors.New("name is empty")
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrNotMember             = errors.New("not a member of this organization")
	ErrNoCurrentOrganization = errors.New("no organization selected")
)
