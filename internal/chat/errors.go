package chat

import "errors"

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrFeatureLocked = errors.New("chat assistant requires the premium plan")
)
