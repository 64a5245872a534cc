package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs.

type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip, emails []string) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Trip], error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip, emails []string) (domain.Trip, error) {
	return m.create(ctx, trip, emails)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Trip], error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockLinkRepo struct {
	create       func(ctx context.Context, link domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	return m.create(ctx, link)
}
func (m *mockLinkRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

type mockParticipantRepo struct {
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) error {
	return m.confirm(ctx, id)
}

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

// compile-time checks.
var (
	_ repo.TripRepo        = (*mockTripRepo)(nil)
	_ repo.LinkRepo        = (*mockLinkRepo)(nil)
	_ repo.ParticipantRepo = (*mockParticipantRepo)(nil)
	_ repo.ActivityRepo    = (*mockActivityRepo)(nil)
)

// ---- helpers ---------------------------------------------------------------

func june(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func storedTrip() domain.Trip {
	return domain.Trip{ID: uuid.New(), Destination: "Rio de Janeiro", StartsAt: june(12), EndsAt: june(18)}
}

// tripsWith returns a trip repo whose GetByID finds only trip.
func tripsWith(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			if id != trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return trip, nil
		},
	}
}
