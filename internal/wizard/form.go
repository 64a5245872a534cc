package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/invite"
)

// FormState is a snapshot of the trip creation form.
type FormState struct {
	Step        Step
	Destination string
	Dates       calendar.Range
	Emails      invite.EmailSet
	Modal       Modal
	Submitting  bool
	TripID      uuid.UUID // set once the trip was created
}

// DatesLabel is the text shown in the "When?" field.
func (s FormState) DatesLabel() string {
	return calendar.Label(s.Dates)
}

// TripForm is the two-step trip creation wizard: destination and dates
// first, then the guests, then a confirmed submission.
type TripForm struct {
	trips   TripCreator
	store   TripStore
	confirm Confirmer
	nav     Navigator
	opts    options

	mu          sync.Mutex
	step        Step
	modal       Modal
	destination string
	dates       calendar.Range
	emails      invite.EmailSet
	tripID      uuid.UUID
	confirming  bool
	generation  uint64
	discarded   bool
}

// NewTripForm returns a form on the trip details step with every field empty.
func NewTripForm(trips TripCreator, store TripStore, confirm Confirmer, nav Navigator, opts ...Option) *TripForm {
	return &TripForm{
		trips:   trips,
		store:   store,
		confirm: confirm,
		nav:     nav,
		opts:    newOptions(opts),
		step:    StepTripDetails,
	}
}

// State returns a copy of the current state.
func (f *TripForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormState{
		Step:        f.step,
		Destination: f.destination,
		Dates:       cloneRange(f.dates),
		Emails:      invite.EmailSet(f.emails.Slice()),
		Modal:       f.modal,
		Submitting:  f.step == StepSubmitting,
		TripID:      f.tripID,
	}
}

// CalendarView returns the render input of the calendar modal.
func (f *TripForm) CalendarView() calendar.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return calendar.NewView(f.dates, f.opts.today())
}

// SetDestination replaces the destination. It is only editable on the trip
// details step.
func (f *TripForm) SetDestination(destination string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepTripDetails {
		return fmt.Errorf("%w: destination is read-only on step %s", ErrInvalidTransition, f.step)
	}
	f.destination = destination
	return nil
}

// TapDay applies a calendar tap to the date range.
func (f *TripForm) TapDay(day calendar.Day) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepTripDetails {
		return fmt.Errorf("%w: dates are read-only on step %s", ErrInvalidTransition, f.step)
	}
	if first := f.opts.today(); !calendar.Selectable(day, first) {
		return fmt.Errorf("%w: %s is before %s", domain.ErrValidation, day, first)
	}
	f.dates = calendar.ApplyTap(f.dates, day)
	return nil
}

// OpenCalendar shows the date picker. Only available on the trip details step.
func (f *TripForm) OpenCalendar() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepTripDetails {
		return fmt.Errorf("%w: calendar is only available on step %s", ErrInvalidTransition, StepTripDetails)
	}
	f.modal = ModalCalendar
	return nil
}

// OpenGuests shows the guest list. Only available on the add e-mails step.
func (f *TripForm) OpenGuests() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepAddEmails {
		return fmt.Errorf("%w: guests are only available on step %s", ErrInvalidTransition, StepAddEmails)
	}
	f.modal = ModalGuests
	return nil
}

// CloseModal hides the current modal. Taps already applied stay in the range.
func (f *TripForm) CloseModal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modal = ModalNone
}

// AddEmail invites raw. See invite.EmailSet.Add for the rules.
func (f *TripForm) AddEmail(raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.editable(); err != nil {
		return err
	}
	emails, err := f.emails.Add(raw)
	if err != nil {
		return err
	}
	f.emails = emails
	return nil
}

// RemoveEmail uninvites email. Unknown addresses are ignored.
func (f *TripForm) RemoveEmail(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.editable(); err != nil {
		return err
	}
	f.emails = f.emails.Remove(email)
	return nil
}

// Retreat goes back from the add e-mails step to the trip details step,
// keeping every field.
func (f *TripForm) Retreat() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepAddEmails {
		return fmt.Errorf("%w: cannot go back from step %s", ErrInvalidTransition, f.step)
	}
	f.step = StepTripDetails
	f.modal = ModalNone
	return nil
}

// Advance moves the form forward.
//
// On the trip details step it validates the destination and dates and moves
// to the add e-mails step. On the add e-mails step it asks for confirmation,
// creates the trip, saves its id locally and navigates to it. While a
// confirmation is pending, a creation is in flight, or once it is done,
// Advance does nothing.
// A failed creation returns the form to the add e-mails step untouched.
func (f *TripForm) Advance(ctx context.Context) error {
	f.mu.Lock()
	if f.discarded {
		f.mu.Unlock()
		return nil
	}
	switch f.step {
	case StepTripDetails:
		defer f.mu.Unlock()
		if err := ValidateDetails(f.destination, f.dates, MinDestinationLength); err != nil {
			return err
		}
		f.step = StepAddEmails
		f.modal = ModalNone
		return nil
	case StepAddEmails:
		if f.confirming {
			f.mu.Unlock()
			return nil
		}
		if err := ValidateDetails(f.destination, f.dates, MinDestinationLength); err != nil {
			f.mu.Unlock()
			return err
		}
		f.confirming = true
		f.mu.Unlock()
		return f.submit(ctx)
	case StepSubmitting, StepDone:
		f.mu.Unlock()
		return nil
	default:
		f.mu.Unlock()
		return fmt.Errorf("%w: unknown step %d", ErrInvalidTransition, f.step)
	}
}

// Discard marks the form as gone. A creation resolving afterwards is ignored.
func (f *TripForm) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discarded = true
	f.generation++
}

// submit runs with confirming set.
func (f *TripForm) submit(ctx context.Context) error {
	ok := f.confirm.Confirm(ctx, "Confirmation", "Confirm the trip?")

	f.mu.Lock()
	f.confirming = false
	if !ok || f.step != StepAddEmails || f.discarded {
		f.mu.Unlock()
		return nil
	}
	f.step = StepSubmitting
	gen := f.generation
	draft := domain.TripDraft{
		Destination:    strings.TrimSpace(f.destination),
		StartsAt:       f.dates.Start.Time(),
		EndsAt:         f.dates.End.Time(),
		EmailsToInvite: f.emails.Slice(),
	}
	f.mu.Unlock()

	id, err := f.trips.CreateTrip(ctx, draft)

	f.mu.Lock()
	if gen != f.generation {
		f.mu.Unlock()
		f.opts.log.DebugContext(ctx, "discarding create trip result of a discarded form", "error", err)
		return nil
	}
	if err != nil {
		f.step = StepAddEmails
		f.mu.Unlock()
		f.opts.log.ErrorContext(ctx, "create trip failed", "error", err)
		return fmt.Errorf("wizard.TripForm.Advance: %w", err)
	}
	f.step = StepDone
	f.modal = ModalNone
	f.tripID = id
	f.mu.Unlock()

	// The id is saved even if the form was discarded meanwhile; only the
	// navigation is dropped.
	if err := f.store.Save(ctx, id); err != nil {
		f.opts.log.ErrorContext(ctx, "save trip id failed", "trip_id", id, "error", err)
		return fmt.Errorf("wizard.TripForm.Advance: %w: %w", ErrPersist, err)
	}

	f.mu.Lock()
	stale := gen != f.generation
	f.mu.Unlock()
	if stale {
		f.opts.log.DebugContext(ctx, "not opening trip of a discarded form", "trip_id", id)
		return nil
	}
	f.nav.ToTrip(id)
	return nil
}

// editable must be called with mu held.
func (f *TripForm) editable() error {
	if f.step == StepSubmitting || f.step == StepDone {
		return fmt.Errorf("%w: form is %s", ErrInvalidTransition, f.step)
	}
	return nil
}
