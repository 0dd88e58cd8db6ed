package datemath

import "time"

// DaysPerWeek is the offset used by "next week".
const DaysPerWeek = 7

// Weekdays maps lower-case English weekday names to time.Weekday.
var Weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NextWeekday returns the first day strictly after base that falls on target.
// When base already is target the result is one week later, never base itself.
func NextWeekday(base time.Time, target time.Weekday) time.Time {
	diff := (int(target) - int(base.Weekday()) + DaysPerWeek) % DaysPerWeek
	if diff == 0 {
		diff = DaysPerWeek
	}
	return base.AddDate(0, 0, diff)
}

// FormatDate renders t as an ISO calendar date in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateFormatISO)
}

// ParseDate parses an ISO calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormatISO, s, loc)
}
