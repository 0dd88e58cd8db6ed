package subscription

import "errors"

var (
	ErrUnknownTier = errors.New("unknown subscription tier")
)
