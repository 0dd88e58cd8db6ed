package gcalendar

import (
	"context"
	"time"
)

const (
	DefaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
	dateLayout        = "2006-01-02"
)

// Calendar is the subset of the Google Calendar API used to mirror tasks.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

// CreateEventRequest describes an event to insert. When AllDay is set only
// the calendar date of StartTime is used.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string
}

// Event is a trimmed Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
