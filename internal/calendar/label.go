package calendar

import (
	"fmt"
	"time"
)

// Label renders a closed range for display, e.g. "12 to 18 of Jun.".
// Ranges crossing a month name both months ("29 of Jun. to 02 of Jul.") and
// ranges crossing a year also carry the years. Unset and pending ranges
// render as "".
func Label(r Range) string {
	if !Complete(r) {
		return ""
	}
	s, e := r.Start.Time(), r.End.Time()
	switch {
	case s.Year() != e.Year():
		return fmt.Sprintf("%02d of %s %d to %02d of %s %d",
			s.Day(), monthAbbr(s.Month()), s.Year(), e.Day(), monthAbbr(e.Month()), e.Year())
	case s.Month() != e.Month():
		return fmt.Sprintf("%02d of %s to %02d of %s",
			s.Day(), monthAbbr(s.Month()), e.Day(), monthAbbr(e.Month()))
	default:
		return fmt.Sprintf("%02d to %02d of %s", s.Day(), e.Day(), monthAbbr(s.Month()))
	}
}

func monthAbbr(m time.Month) string {
	return m.String()[:3] + "."
}
