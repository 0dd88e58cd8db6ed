package database

import "errors"

var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrNotReady          = errors.New("database not ready")
)
