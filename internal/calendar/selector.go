package calendar

// Range is the date range being selected. A nil Start means the range is
// unset; a Start without End is pending (the user tapped once). When both
// are set, Start never comes after End: ApplyTap keeps them ordered.
type Range struct {
	Start *Day
	End   *Day
}

// Pending returns a range started on d and waiting for its end day.
func Pending(d Day) Range {
	return Range{Start: &d}
}

// Closed returns the range spanning a and b in chronological order.
func Closed(a, b Day) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: &a, End: &b}
}

// IsUnset reports whether no day has been picked yet.
func (r Range) IsUnset() bool {
	return r.Start == nil
}

// IsPending reports whether only the start day has been picked.
func (r Range) IsPending() bool {
	return r.Start != nil && r.End == nil
}

// ApplyTap returns the range resulting from tapping day on top of current.
//
//   - unset: tapped becomes the pending start.
//   - pending: a tap on or after the start closes the range; a tap before it
//     closes the range with tapped as the start and the old start as the end.
//   - closed: the selection restarts with tapped as the pending start.
func ApplyTap(current Range, tapped Day) Range {
	switch {
	case current.IsUnset(), Complete(current):
		return Pending(tapped)
	case tapped.Before(*current.Start):
		return Range{Start: &tapped, End: clone(current.Start)}
	default:
		return Range{Start: clone(current.Start), End: &tapped}
	}
}

// Complete reports whether both endpoints are set. It gates form submission.
func Complete(r Range) bool {
	return r.Start != nil && r.End != nil
}

// Days returns every day of a closed range, start and end included.
// It returns nil for unset and pending ranges.
func Days(r Range) []Day {
	if !Complete(r) {
		return nil
	}
	var days []Day
	for d := *r.Start; !r.End.Before(d); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether d falls inside the closed range r.
func Contains(r Range, d Day) bool {
	return Complete(r) && !d.Before(*r.Start) && !r.End.Before(d)
}

func clone(d *Day) *Day {
	c := *d
	return &c
}
