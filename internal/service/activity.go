package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ActivityService implements business logic for the activities of a trip.
type ActivityService struct {
	activities repo.ActivityRepo
	trips      repo.TripRepo
}

// NewActivityService constructs an ActivityService.
func NewActivityService(activities repo.ActivityRepo, trips repo.TripRepo) *ActivityService {
	return &ActivityService{activities: activities, trips: trips}
}

// Create validates and stores an activity. It must fall on a day of the
// trip, compared in UTC.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: title is required", domain.ErrValidation)
	}
	if a.OccursAt.IsZero() {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: occurs_at is required", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, a.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	span := calendar.Closed(calendar.DayOf(trip.StartsAt), calendar.DayOf(trip.EndsAt))
	if !calendar.Contains(span, calendar.DayOf(a.OccursAt.UTC())) {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: occurs_at must fall between %s and %s",
			domain.ErrValidation, span.Start, span.End)
	}

	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// ListByTripID returns the activities of a trip, or domain.ErrNotFound for
// an unknown trip.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	list, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	return list, nil
}
