// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/invite"
	"github.com/pkordes/trip-planner/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates a draft and persists the trip with its invitations.
// Dates are truncated to their calendar day; e-mails are normalized and
// deduplicated.
func (s *TripService) Create(ctx context.Context, draft domain.TripDraft) (domain.Trip, error) {
	trip := domain.Trip{
		Destination: strings.TrimSpace(draft.Destination),
		StartsAt:    truncateDay(draft.StartsAt),
		EndsAt:      truncateDay(draft.EndsAt),
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	emails, err := normalizeEmails(draft.EmailsToInvite)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, trip, emails)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// ListPaged returns one page of trips and the total count.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	page, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	return page.Items, page.Total, nil
}

// Update validates and saves the destination and dates of an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.StartsAt = truncateDay(trip.StartsAt)
	trip.EndsAt = truncateDay(trip.EndsAt)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// ---- helpers ----

func validateTrip(t domain.Trip) error {
	if t.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if t.StartsAt.IsZero() || t.EndsAt.IsZero() {
		return fmt.Errorf("%w: starts_at and ends_at are required", domain.ErrValidation)
	}
	if t.EndsAt.Before(t.StartsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", domain.ErrValidation)
	}
	return nil
}

// normalizeEmails validates every address and drops duplicates, keeping the
// first occurrence.
func normalizeEmails(raw []string) ([]string, error) {
	var set invite.EmailSet
	for _, r := range raw {
		next, err := set.Add(r)
		switch {
		case errors.Is(err, invite.ErrDuplicateEmail):
			continue
		case err != nil:
			return nil, fmt.Errorf("%w: %q", err, r)
		}
		set = next
	}
	return set.Slice(), nil
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return calendar.DayOf(t).Time()
}
