package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/testutil"
)

func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Rio de Janeiro",
		StartsAt:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
	}
}

// createTrip inserts a trip fixture with no guests.
func createTrip(t *testing.T, tx pgx.Tx) domain.Trip {
	t.Helper()
	trip, err := repo.NewTripRepo(tx).Create(context.Background(), tripFixture(), nil)
	require.NoError(t, err)
	return trip
}

func TestTripRepo_Create(t *testing.T) {
	tx := testutil.NewTx(t)
	r := repo.NewTripRepo(tx)
	input := tripFixture()

	got, err := r.Create(context.Background(), input, nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartsAt.Equal(input.StartsAt), "StartsAt mismatch")
	assert.True(t, got.EndsAt.Equal(input.EndsAt), "EndsAt mismatch")
	assert.False(t, got.IsConfirmed)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestTripRepo_Create_InvitesParticipants(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()

	trip, err := repo.NewTripRepo(tx).Create(ctx, tripFixture(), []string{"bo@example.com", "ana@example.com", "ana@example.com"})
	require.NoError(t, err)

	people, err := repo.NewParticipantRepo(tx).ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, people, 2, "duplicate e-mails are stored once")
	assert.Equal(t, "ana@example.com", people[0].Email)
	assert.Equal(t, "bo@example.com", people[1].Email)
	for _, p := range people {
		assert.Equal(t, trip.ID, p.TripID)
		assert.False(t, p.IsConfirmed)
		assert.Empty(t, p.Name)
	}
}

func TestTripRepo_Create_EndBeforeStartIsRejected(t *testing.T) {
	tx := testutil.NewTx(t)
	input := tripFixture()
	input.EndsAt = input.StartsAt.AddDate(0, 0, -1)

	_, err := repo.NewTripRepo(tx).Create(context.Background(), input, []string{"ana@example.com"})

	require.Error(t, err)
}

func TestTripRepo_GetByID(t *testing.T) {
	tx := testutil.NewTx(t)
	created := createTrip(t, tx)

	got, err := repo.NewTripRepo(tx).GetByID(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Destination, got.Destination)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := testutil.NewTx(t)

	_, err := repo.NewTripRepo(tx).GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListPaged(t *testing.T) {
	tx := testutil.NewTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	before, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 100})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		trip := tripFixture()
		trip.StartsAt = trip.StartsAt.AddDate(1, 0, i)
		trip.EndsAt = trip.StartsAt
		_, err := r.Create(ctx, trip, nil)
		require.NoError(t, err)
	}

	page, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, before.Total+3, page.Total)
	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[0].StartsAt.After(page.Items[1].StartsAt), "most recent first")
}

func TestTripRepo_Update(t *testing.T) {
	tx := testutil.NewTx(t)
	r := repo.NewTripRepo(tx)
	created := createTrip(t, tx)

	created.Destination = "Lisbon"
	created.StartsAt = created.StartsAt.AddDate(0, 1, 0)
	created.EndsAt = created.EndsAt.AddDate(0, 1, 0)
	got, err := r.Update(context.Background(), created)

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)
	assert.True(t, got.StartsAt.Equal(created.StartsAt))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	tx := testutil.NewTx(t)
	trip := tripFixture()
	trip.ID = uuid.New()

	_, err := repo.NewTripRepo(tx).Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_CascadesToChildren(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	r := repo.NewTripRepo(tx)
	trip, err := r.Create(ctx, tripFixture(), []string{"ana@example.com"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, trip.ID))

	_, err = r.GetByID(ctx, trip.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	people, err := repo.NewParticipantRepo(tx).ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	tx := testutil.NewTx(t)

	err := repo.NewTripRepo(tx).Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
