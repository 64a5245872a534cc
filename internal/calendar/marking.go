package calendar

// Colors handed to the widget for period marking.
const (
	EndpointColor     = "#bef264"
	EndpointTextColor = "#1a2e05"
	BetweenColor      = "#27272a"
	BetweenTextColor  = "#f4f4f5"
)

// Marking tags one day of the selected range. A single-day range marks its
// only day as both start and end.
type Marking struct {
	IsStart   bool
	IsEnd     bool
	IsBetween bool
	Color     string
	TextColor string
}

// MarkedDays maps "YYYY-MM-DD" to the marking of that day.
type MarkedDays map[string]Marking

// MarkDays derives the markings of r, one entry per day from start to end
// inclusive. Unset and pending ranges yield an empty, non-nil set.
// The result depends on r alone.
func MarkDays(r Range) MarkedDays {
	days := Days(r)
	marked := make(MarkedDays, len(days))
	for _, d := range days {
		m := Marking{
			IsStart: d.Timestamp == r.Start.Timestamp,
			IsEnd:   d.Timestamp == r.End.Timestamp,
		}
		m.IsBetween = !m.IsStart && !m.IsEnd
		if m.IsBetween {
			m.Color, m.TextColor = BetweenColor, BetweenTextColor
		} else {
			m.Color, m.TextColor = EndpointColor, EndpointTextColor
		}
		marked[d.Date] = m
	}
	return marked
}

// View is the render input of the calendar widget.
type View struct {
	Marked  MarkedDays
	MinDate Day
}

// NewView builds the widget input for r with today as the earliest
// selectable day.
func NewView(r Range, today Day) View {
	return View{Marked: MarkDays(r), MinDate: today}
}

// Selectable reports whether d may be tapped given the earliest selectable
// day first.
func Selectable(d, first Day) bool {
	return !d.Before(first)
}
