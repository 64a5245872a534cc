package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
)

// maxHeaderDestination is how many characters of the destination the trip
// header shows before truncating.
const maxHeaderDestination = 14

// TripService is what the trip editor needs from the remote API.
type TripService interface {
	TripFetcher
	TripUpdater
}

// EditorState is a snapshot of the trip editor.
type EditorState struct {
	Trip        domain.Trip
	Header      string
	Destination string
	Dates       calendar.Range
	Modal       Modal
	Loading     bool
	Submitting  bool
	// Gone is set when the trip no longer exists; the screen is terminal.
	Gone bool
}

// DatesLabel is the text shown in the "When?" field of the update modal.
func (s EditorState) DatesLabel() string {
	return calendar.Label(s.Dates)
}

// TripEditor loads an existing trip and edits its destination and dates.
type TripEditor struct {
	id    uuid.UUID
	trips TripService
	nav   Navigator
	opts  options

	mu          sync.Mutex
	trip        domain.Trip
	header      string
	destination string
	dates       calendar.Range
	modal       Modal
	loading     bool
	submitting  bool
	gone        bool
	generation  uint64
}

// NewTripEditor returns an editor for trip id. Call Load to fetch it.
func NewTripEditor(id uuid.UUID, trips TripService, nav Navigator, opts ...Option) *TripEditor {
	return &TripEditor{
		id:    id,
		trips: trips,
		nav:   nav,
		opts:  newOptions(opts),
	}
}

// State returns a copy of the current state.
func (e *TripEditor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EditorState{
		Trip:        e.trip,
		Header:      e.header,
		Destination: e.destination,
		Dates:       cloneRange(e.dates),
		Modal:       e.modal,
		Loading:     e.loading,
		Submitting:  e.submitting,
		Gone:        e.gone,
	}
}

// CalendarView returns the render input of the calendar modal.
func (e *TripEditor) CalendarView() calendar.View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return calendar.NewView(e.dates, e.opts.today())
}

// Load fetches the trip and resets the editable fields to its values.
// A trip that does not exist navigates back and leaves the editor terminal.
// Load does nothing while another load or a submission is in flight.
func (e *TripEditor) Load(ctx context.Context) error {
	if e.id == uuid.Nil {
		e.markGone()
		e.nav.Back()
		return fmt.Errorf("wizard.TripEditor.Load: %w", domain.ErrNotFound)
	}

	e.mu.Lock()
	if e.gone || e.busy() {
		e.mu.Unlock()
		return nil
	}
	e.loading = true
	gen := e.generation
	e.mu.Unlock()

	return e.fetch(ctx, gen)
}

// fetch loads the trip on behalf of a caller that already set loading.
func (e *TripEditor) fetch(ctx context.Context, gen uint64) error {
	trip, err := e.trips.GetTrip(ctx, e.id)

	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		e.opts.log.DebugContext(ctx, "discarding trip load of a discarded editor", "trip_id", e.id)
		return nil
	}
	e.loading = false
	if err != nil {
		notFound := errors.Is(err, domain.ErrNotFound)
		e.gone = notFound
		e.mu.Unlock()
		e.opts.log.ErrorContext(ctx, "load trip failed", "trip_id", e.id, "error", err)
		if notFound {
			e.nav.Back()
		}
		return fmt.Errorf("wizard.TripEditor.Load: %w", err)
	}
	e.trip = trip
	e.destination = trip.Destination
	e.dates = calendar.Closed(calendar.DayOf(trip.StartsAt), calendar.DayOf(trip.EndsAt))
	e.header = Header(trip)
	e.mu.Unlock()
	return nil
}

// SetDestination replaces the edited destination.
func (e *TripEditor) SetDestination(destination string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.destination = destination
}

// TapDay applies a calendar tap to the edited date range.
func (e *TripEditor) TapDay(day calendar.Day) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if first := e.opts.today(); !calendar.Selectable(day, first) {
		return fmt.Errorf("%w: %s is before %s", domain.ErrValidation, day, first)
	}
	e.dates = calendar.ApplyTap(e.dates, day)
	return nil
}

// OpenUpdate shows the update modal.
func (e *TripEditor) OpenUpdate() {
	e.setModal(ModalUpdateTrip)
}

// OpenCalendar shows the date picker on top of the update modal.
func (e *TripEditor) OpenCalendar() {
	e.setModal(ModalCalendar)
}

// ConfirmCalendar closes the date picker and returns to the update modal.
func (e *TripEditor) ConfirmCalendar() {
	e.setModal(ModalUpdateTrip)
}

// CloseModal hides any modal. Edits are kept.
func (e *TripEditor) CloseModal() {
	e.setModal(ModalNone)
}

// Submit validates the edits, saves them and reloads the trip.
// Submit does nothing while a load or another submission is in flight.
// On failure the edits are kept so the user can retry.
func (e *TripEditor) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.gone || e.busy() {
		e.mu.Unlock()
		return nil
	}
	if err := ValidateDetails(e.destination, e.dates, 0); err != nil {
		e.mu.Unlock()
		return err
	}
	e.submitting = true
	gen := e.generation
	trip := domain.Trip{
		ID:          e.id,
		Destination: strings.TrimSpace(e.destination),
		StartsAt:    e.dates.Start.Time(),
		EndsAt:      e.dates.End.Time(),
	}
	e.mu.Unlock()

	err := e.trips.UpdateTrip(ctx, trip)

	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		e.opts.log.DebugContext(ctx, "discarding trip update of a discarded editor", "trip_id", e.id)
		return nil
	}
	e.submitting = false
	if err != nil {
		e.mu.Unlock()
		e.opts.log.ErrorContext(ctx, "update trip failed", "trip_id", e.id, "error", err)
		return fmt.Errorf("wizard.TripEditor.Submit: %w", err)
	}
	e.modal = ModalNone
	e.loading = true
	e.mu.Unlock()

	return e.fetch(ctx, gen)
}

// Discard marks the editor as gone. Calls resolving afterwards are ignored.
func (e *TripEditor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	e.gone = true
}

// busy reports whether a call to the API is in flight. Callers hold mu.
func (e *TripEditor) busy() bool {
	return e.loading || e.submitting
}

func (e *TripEditor) setModal(m Modal) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.modal = m
}

func (e *TripEditor) markGone() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gone = true
}

// Header renders the one-line trip summary shown above the tabs, e.g.
// "Rio de Janeiro from 12 to 18 of Jun.". Long destinations are cut to
// 14 characters followed by "...".
func Header(trip domain.Trip) string {
	dest := []rune(trip.Destination)
	name := trip.Destination
	if len(dest) > maxHeaderDestination {
		name = string(dest[:maxHeaderDestination]) + "..."
	}
	dates := calendar.Closed(calendar.DayOf(trip.StartsAt), calendar.DayOf(trip.EndsAt))
	return name + " from " + calendar.Label(dates)
}
