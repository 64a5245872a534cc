package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/testutil"
)

func TestLinkRepo_CreateAndList(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewLinkRepo(tx)

	first, err := r.Create(ctx, domain.Link{TripID: trip.ID, Title: "Hotel", URL: "https://hotel.example.com"})
	require.NoError(t, err)
	_, err = r.Create(ctx, domain.Link{TripID: trip.ID, Title: "Flight", URL: "https://air.example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, trip.ID, first.TripID)
	assert.False(t, first.CreatedAt.IsZero())

	links, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Hotel", links[0].Title)
	assert.Equal(t, "https://air.example.com", links[1].URL)
}

func TestLinkRepo_Create_UnknownTrip(t *testing.T) {
	tx := testutil.NewTx(t)

	_, err := repo.NewLinkRepo(tx).Create(context.Background(), domain.Link{TripID: uuid.New(), Title: "x", URL: "https://x.example.com"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkRepo_ListByTripID_EmptyIsNotNil(t *testing.T) {
	tx := testutil.NewTx(t)
	trip := createTrip(t, tx)

	links, err := repo.NewLinkRepo(tx).ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
