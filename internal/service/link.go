package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// LinkService implements business logic for the links of a trip.
type LinkService struct {
	links repo.LinkRepo
	trips repo.TripRepo
}

// NewLinkService constructs a LinkService.
func NewLinkService(links repo.LinkRepo, trips repo.TripRepo) *LinkService {
	return &LinkService{links: links, trips: trips}
}

// Create validates and stores a link. The trip must exist.
func (s *LinkService) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	link.Title = strings.TrimSpace(link.Title)
	link.URL = strings.TrimSpace(link.URL)
	if link.Title == "" {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w: title is required", domain.ErrValidation)
	}
	if !absoluteHTTPURL(link.URL) {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w: url must be an absolute http(s) URL", domain.ErrValidation)
	}

	created, err := s.links.Create(ctx, link)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return created, nil
}

// ListByTripID returns the links of a trip, or domain.ErrNotFound for an
// unknown trip.
func (s *LinkService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	return links, nil
}

func absoluteHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
