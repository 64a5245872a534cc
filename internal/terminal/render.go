package terminal

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkordes/trip-planner/internal/wizard"
)

// TripScreen renders the trip header followed by the activities of each
// day, the links and the guests.
func TripScreen(w io.Writer, header string, days []wizard.DayActivities, details wizard.DetailsState) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, header)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Activities")
	for _, day := range days {
		fmt.Fprintf(tw, "  %s\n", day.Day)
		if len(day.Activities) == 0 {
			fmt.Fprintln(tw, "    no activities")
			continue
		}
		for _, a := range day.Activities {
			fmt.Fprintf(tw, "    %s\t%s\n", a.OccursAt.UTC().Format(wizard.ClockLayout), a.Title)
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Important links")
	if len(details.Links) == 0 {
		fmt.Fprintln(tw, "  no links")
	}
	for _, l := range details.Links {
		fmt.Fprintf(tw, "  %s\t%s\n", l.Title, l.URL)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Guests")
	if len(details.Participants) == 0 {
		fmt.Fprintln(tw, "  no guests")
	}
	for i, p := range details.Participants {
		name := p.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Guest %d", i+1)
		}
		status := "pending"
		if p.IsConfirmed {
			status = "confirmed"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", name, p.Email, status, p.ID)
	}
	return tw.Flush()
}
