// Package wizard holds the screen state machines of the trip planner:
// the two-step trip creation form, the trip editor, the links and
// participants tab, the activities tab and the start-up resume check.
//
// Each machine owns its state exclusively and guards it with a mutex.
// Network calls run outside the lock; a submitting flag keeps at most one
// call in flight per instance and a generation counter, bumped by Discard,
// drops results that resolve after the screen went away.
// The UI layer only renders the State snapshots and forwards events.
package wizard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ErrInvalidTransition is returned for events that are not legal in the
// current step (e.g. Retreat from the first step).
var ErrInvalidTransition = errors.New("invalid transition")

// ErrPersist is returned when a trip was created but its id could not be
// stored locally.
var ErrPersist = errors.New("could not save the trip")

// Step is a step of the trip creation form.
type Step int

const (
	StepTripDetails Step = iota + 1
	StepAddEmails
	StepSubmitting
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepTripDetails:
		return "trip_details"
	case StepAddEmails:
		return "add_emails"
	case StepSubmitting:
		return "submitting"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Modal is the modal currently shown on top of a screen. It is orthogonal
// to the step: opening or closing a modal never changes the step.
type Modal int

const (
	ModalNone Modal = iota
	ModalCalendar
	ModalGuests
	ModalUpdateTrip
)

func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalCalendar:
		return "calendar"
	case ModalGuests:
		return "guests"
	case ModalUpdateTrip:
		return "update_trip"
	default:
		return "unknown"
	}
}

// TripCreator creates trips on the remote API.
type TripCreator interface {
	CreateTrip(ctx context.Context, draft domain.TripDraft) (uuid.UUID, error)
}

// TripFetcher loads a trip from the remote API.
// It returns domain.ErrNotFound when the id resolves to no trip.
type TripFetcher interface {
	GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// TripUpdater saves an edited trip on the remote API.
type TripUpdater interface {
	UpdateTrip(ctx context.Context, trip domain.Trip) error
}

// TripStore remembers the id of the trip the user is planning.
type TripStore interface {
	Save(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context) (uuid.UUID, bool, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}

// Navigator moves between screens.
type Navigator interface {
	ToTrip(id uuid.UUID)
	Back()
}

// Option configures a state machine.
type Option func(*options)

type options struct {
	log   *slog.Logger
	today func() calendar.Day
}

// WithLogger sets the logger used for swallowed and background errors.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithToday overrides the clock that bounds the earliest selectable day.
func WithToday(today func() calendar.Day) Option {
	return func(o *options) { o.today = today }
}

func newOptions(opts []Option) options {
	o := options{log: slog.Default(), today: calendar.Today}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func cloneRange(r calendar.Range) calendar.Range {
	var out calendar.Range
	if r.Start != nil {
		s := *r.Start
		out.Start = &s
	}
	if r.End != nil {
		e := *r.End
		out.End = &e
	}
	return out
}
