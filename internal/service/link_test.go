package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

func TestLinkService_Create_Valid(t *testing.T) {
	trip := storedTrip()
	links := &mockLinkRepo{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			l.ID = uuid.New()
			return l, nil
		},
	}
	svc := service.NewLinkService(links, tripsWith(trip))

	got, err := svc.Create(context.Background(), domain.Link{TripID: trip.ID, Title: " Hotel ", URL: " https://hotel.example.com/booking "})

	require.NoError(t, err)
	assert.Equal(t, "Hotel", got.Title)
	assert.Equal(t, "https://hotel.example.com/booking", got.URL)
}

func TestLinkService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		title string
		url   string
	}{
		{"blank title", " ", "https://example.com"},
		{"relative url", "Hotel", "/booking"},
		{"ftp url", "Hotel", "ftp://example.com/file"},
		{"no host", "Hotel", "https://"},
		{"not a url", "Hotel", "hotel"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewLinkService(&mockLinkRepo{}, &mockTripRepo{})

			_, err := svc.Create(context.Background(), domain.Link{TripID: uuid.New(), Title: tc.title, URL: tc.url})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestLinkService_Create_UnknownTrip(t *testing.T) {
	links := &mockLinkRepo{
		create: func(context.Context, domain.Link) (domain.Link, error) { return domain.Link{}, domain.ErrNotFound },
	}
	svc := service.NewLinkService(links, &mockTripRepo{})

	_, err := svc.Create(context.Background(), domain.Link{TripID: uuid.New(), Title: "Hotel", URL: "https://example.com"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_ListByTripID(t *testing.T) {
	trip := storedTrip()
	want := []domain.Link{{ID: uuid.New(), TripID: trip.ID, Title: "Hotel"}}
	links := &mockLinkRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Link, error) { return want, nil },
	}
	svc := service.NewLinkService(links, tripsWith(trip))

	got, err := svc.ListByTripID(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListByTripID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
