// Package calendar turns single-day taps on a calendar widget into a
// committed date range and derives what the widget needs to render it:
// the per-day markings, a human readable label and the earliest
// selectable day.
//
// Everything here works at calendar-day granularity in UTC. Days are
// produced at the widget boundary by ParseDay or DayOf; the functions
// operating on them cannot fail.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for Day.Date.
const DateLayout = "2006-01-02"

// Day is a single calendar day as emitted by the calendar widget.
// Timestamp is the Unix time in milliseconds of 00:00 UTC on Date and is
// the only field used for ordering.
type Day struct {
	Date      string
	Timestamp int64
}

// ParseDay builds a Day from a "YYYY-MM-DD" string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("calendar.ParseDay: %q: %w", s, err)
	}
	return DayOf(t), nil
}

// DayOf returns the Day holding t's calendar date, read in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Day{
		Date:      midnight.Format(DateLayout),
		Timestamp: midnight.UnixMilli(),
	}
}

// Today returns the current day in the local time zone.
func Today() Day {
	return DayOf(time.Now())
}

// Time returns 00:00 UTC of the day.
func (d Day) Time() time.Time {
	return time.UnixMilli(d.Timestamp).UTC()
}

// Before reports whether d comes strictly before other.
func (d Day) Before(other Day) bool {
	return d.Timestamp < other.Timestamp
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d Day) String() string {
	return d.Date
}
