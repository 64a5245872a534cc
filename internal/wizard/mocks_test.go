package wizard_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/wizard"
)

// ---- test doubles ----------------------------------------------------------

// mockTrips is a hand-written test double for the trip API.
// Set only the function fields your test needs.
type mockTrips struct {
	create func(ctx context.Context, draft domain.TripDraft) (uuid.UUID, error)
	get    func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update func(ctx context.Context, trip domain.Trip) error
}

func (m *mockTrips) CreateTrip(ctx context.Context, draft domain.TripDraft) (uuid.UUID, error) {
	return m.create(ctx, draft)
}
func (m *mockTrips) GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.get(ctx, id)
}
func (m *mockTrips) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	return m.update(ctx, trip)
}

// compile-time checks.
var (
	_ wizard.TripCreator = (*mockTrips)(nil)
	_ wizard.TripService = (*mockTrips)(nil)
)

// mockStore is an in-memory wizard.TripStore.
type mockStore struct {
	mu      sync.Mutex
	id      uuid.UUID
	saved   bool
	saveErr error
	getErr  error
	// onSave, when set, runs before the id is saved.
	onSave func()
}

func (m *mockStore) Save(_ context.Context, id uuid.UUID) error {
	if m.onSave != nil {
		m.onSave()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.id, m.saved = id, true
	return nil
}

func (m *mockStore) Get(_ context.Context) (uuid.UUID, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.saved, m.getErr
}

// confirmFunc adapts a function to wizard.Confirmer.
type confirmFunc func(ctx context.Context, title, message string) bool

func (f confirmFunc) Confirm(ctx context.Context, title, message string) bool {
	return f(ctx, title, message)
}

func alwaysConfirm() wizard.Confirmer {
	return confirmFunc(func(context.Context, string, string) bool { return true })
}

// recordingNav records navigation calls.
type recordingNav struct {
	mu    sync.Mutex
	trips []uuid.UUID
	backs int
}

func (n *recordingNav) ToTrip(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.trips = append(n.trips, id)
}

func (n *recordingNav) Back() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.backs++
}

func (n *recordingNav) visited() []uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]uuid.UUID(nil), n.trips...)
}

func (n *recordingNav) backCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.backs
}

// ---- helpers ---------------------------------------------------------------

// fixedToday pins the earliest selectable day so fixtures stay in the future.
func fixedToday(t *testing.T) wizard.Option {
	today := day(t, "2024-06-01")
	return wizard.WithToday(func() calendar.Day { return today })
}

func day(t *testing.T, s string) calendar.Day {
	t.Helper()
	d, err := calendar.ParseDay(s)
	require.NoError(t, err)
	return d
}

func juneWeek(t *testing.T) calendar.Range {
	return calendar.Closed(day(t, "2024-06-12"), day(t, "2024-06-18"))
}
