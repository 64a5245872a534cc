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

func TestParticipantRepo_Confirm(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	trip, err := repo.NewTripRepo(tx).Create(ctx, tripFixture(), []string{"ana@example.com"})
	require.NoError(t, err)
	r := repo.NewParticipantRepo(tx)
	people, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, people, 1)

	require.NoError(t, r.Confirm(ctx, people[0].ID))

	people, err = r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.True(t, people[0].IsConfirmed)
}

func TestParticipantRepo_Confirm_NotFound(t *testing.T) {
	tx := testutil.NewTx(t)

	err := repo.NewParticipantRepo(tx).Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
