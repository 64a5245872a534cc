package wizard

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ClockLayout is the "HH:MM" format of activity times.
const ClockLayout = "15:04"

// ActivityService creates and lists the activities of a trip.
type ActivityService interface {
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	ListActivities(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

// DayActivities groups the activities planned for one day of the trip.
type DayActivities struct {
	Day        calendar.Day
	Activities []domain.Activity
}

// Activities is the tab listing a trip's activities day by day.
type Activities struct {
	trip domain.Trip
	svc  ActivityService
	opts options

	mu         sync.Mutex
	list       []domain.Activity
	submitting bool
	generation uint64
}

// NewActivities returns the activities tab of trip. Call Refresh to load it.
func NewActivities(trip domain.Trip, svc ActivityService, opts ...Option) *Activities {
	return &Activities{trip: trip, svc: svc, opts: newOptions(opts)}
}

// Refresh reloads the activities from the API.
func (a *Activities) Refresh(ctx context.Context) error {
	a.mu.Lock()
	gen := a.generation
	a.mu.Unlock()

	list, err := a.svc.ListActivities(ctx, a.trip.ID)
	if err != nil {
		a.opts.log.ErrorContext(ctx, "list activities failed", "trip_id", a.trip.ID, "error", err)
		return fmt.Errorf("wizard.Activities.Refresh: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen == a.generation {
		a.list = list
	}
	return nil
}

// Add plans a new activity on day at clock ("HH:MM") and reloads the list.
// The day must belong to the trip. A second Add while one is in flight does
// nothing.
func (a *Activities) Add(ctx context.Context, title string, day calendar.Day, clock string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: activity title is required", domain.ErrValidation)
	}
	at, err := time.Parse(ClockLayout, strings.TrimSpace(clock))
	if err != nil {
		return fmt.Errorf("%w: activity time must be HH:MM", domain.ErrValidation)
	}
	if !calendar.Contains(a.tripRange(), day) {
		return fmt.Errorf("%w: %s is outside the trip", domain.ErrValidation, day)
	}

	a.mu.Lock()
	if a.submitting {
		a.mu.Unlock()
		return nil
	}
	a.submitting = true
	gen := a.generation
	a.mu.Unlock()

	occursAt := day.Time().Add(time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute)
	_, err = a.svc.CreateActivity(ctx, domain.Activity{TripID: a.trip.ID, Title: title, OccursAt: occursAt})

	a.mu.Lock()
	if gen != a.generation {
		a.mu.Unlock()
		return nil
	}
	a.submitting = false
	a.mu.Unlock()
	if err != nil {
		a.opts.log.ErrorContext(ctx, "create activity failed", "trip_id", a.trip.ID, "error", err)
		return fmt.Errorf("wizard.Activities.Add: %w", err)
	}
	return a.Refresh(ctx)
}

// ByDay returns one entry per day of the trip, each holding that day's
// activities in chronological order.
func (a *Activities) ByDay() []DayActivities {
	a.mu.Lock()
	list := slices.Clone(a.list)
	a.mu.Unlock()

	slices.SortStableFunc(list, func(x, y domain.Activity) int {
		return x.OccursAt.Compare(y.OccursAt)
	})

	days := calendar.Days(a.tripRange())
	out := make([]DayActivities, len(days))
	index := make(map[string]int, len(days))
	for i, d := range days {
		out[i] = DayActivities{Day: d}
		index[d.Date] = i
	}
	for _, act := range list {
		if i, ok := index[calendar.DayOf(act.OccursAt.UTC()).Date]; ok {
			out[i].Activities = append(out[i].Activities, act)
		}
	}
	return out
}

// Discard marks the tab as gone. Calls resolving afterwards are ignored.
func (a *Activities) Discard() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generation++
}

func (a *Activities) tripRange() calendar.Range {
	return calendar.Closed(calendar.DayOf(a.trip.StartsAt), calendar.DayOf(a.trip.EndsAt))
}
