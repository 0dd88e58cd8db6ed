package pomodoro

import "errors"

var ErrUnknownMode = errors.New("unknown pomodoro mode")
