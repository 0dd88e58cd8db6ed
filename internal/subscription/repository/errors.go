package repository

import "errors"

var (
	ErrFailedToGet = errors.New("failed to get subscription")
	ErrFailedToSet = errors.New("failed to set subscription")
)
