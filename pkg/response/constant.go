package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire layout of timestamps, always rendered in UTC.
	DateTimeFormat = time.RFC3339
)
