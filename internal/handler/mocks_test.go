package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
)

// Test doubles for the servicer interfaces. Set only the method fields your
// test needs.

type mockTripServicer struct {
	create    func(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, d domain.TripDraft) (domain.Trip, error) {
	return m.create(ctx, d)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockLinkServicer struct {
	create       func(ctx context.Context, link domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkServicer) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

type mockParticipantServicer struct {
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockParticipantServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) error {
	return m.confirm(ctx, id)
}

type mockActivityServicer struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

// compile-time checks.
var (
	_ handler.TripServicer        = (*mockTripServicer)(nil)
	_ handler.LinkServicer        = (*mockLinkServicer)(nil)
	_ handler.ParticipantServicer = (*mockParticipantServicer)(nil)
	_ handler.ActivityServicer    = (*mockActivityServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// services bundles the mocks wired into a test router. Nil fields get an
// empty mock so unrelated routes never dereference nil.
type services struct {
	trips        *mockTripServicer
	links        *mockLinkServicer
	participants *mockParticipantServicer
	activities   *mockActivityServicer
}

// newHTTPHandler wires a Server with the given mocks, the way main.go wires it.
func newHTTPHandler(s services) http.Handler {
	if s.trips == nil {
		s.trips = &mockTripServicer{}
	}
	if s.links == nil {
		s.links = &mockLinkServicer{}
	}
	if s.participants == nil {
		s.participants = &mockParticipantServicer{}
	}
	if s.activities == nil {
		s.activities = &mockActivityServicer{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(s.trips, s.links, s.participants, s.activities, log).Routes()
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorDetail {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Rio de Janeiro",
		StartsAt:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}
