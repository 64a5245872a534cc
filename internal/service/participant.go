package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ParticipantService implements business logic for the guests of a trip.
type ParticipantService struct {
	participants repo.ParticipantRepo
	trips        repo.TripRepo
}

// NewParticipantService constructs a ParticipantService.
func NewParticipantService(participants repo.ParticipantRepo, trips repo.TripRepo) *ParticipantService {
	return &ParticipantService{participants: participants, trips: trips}
}

// ListByTripID returns the guests of a trip, or domain.ErrNotFound for an
// unknown trip.
func (s *ParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	people, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	return people, nil
}

// Confirm marks a guest as attending. Confirming twice is not an error.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) error {
	if err := s.participants.Confirm(ctx, id); err != nil {
		return fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return nil
}
