package wizard

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/internal/domain"
)

// LinkService creates and lists the links of a trip.
type LinkService interface {
	CreateLink(ctx context.Context, link domain.Link) (domain.Link, error)
	ListLinks(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// ParticipantLister lists the guests of a trip.
type ParticipantLister interface {
	ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// DetailsState is a snapshot of the details tab.
type DetailsState struct {
	Links        []domain.Link
	Participants []domain.Participant
	Submitting   bool
}

// Details is the tab listing a trip's important links and its guests.
type Details struct {
	tripID uuid.UUID
	links  LinkService
	people ParticipantLister
	opts   options

	mu           sync.Mutex
	linkList     []domain.Link
	participants []domain.Participant
	submitting   bool
	generation   uint64
}

// NewDetails returns the details tab of trip tripID. Call Refresh to load it.
func NewDetails(tripID uuid.UUID, links LinkService, people ParticipantLister, opts ...Option) *Details {
	return &Details{tripID: tripID, links: links, people: people, opts: newOptions(opts)}
}

// State returns a copy of the current state.
func (d *Details) State() DetailsState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DetailsState{
		Links:        append([]domain.Link(nil), d.linkList...),
		Participants: append([]domain.Participant(nil), d.participants...),
		Submitting:   d.submitting,
	}
}

// Refresh loads links and participants concurrently. A failure on one list
// does not prevent the other from loading; the first error is returned.
func (d *Details) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.refreshLinks(ctx) })
	g.Go(func() error { return d.refreshParticipants(ctx) })
	return g.Wait()
}

// AddLink validates and saves a new link, then reloads the links.
// A second AddLink while one is in flight does nothing.
func (d *Details) AddLink(ctx context.Context, title, rawURL string) error {
	title = strings.TrimSpace(title)
	rawURL = strings.TrimSpace(rawURL)
	if err := ValidateLink(title, rawURL); err != nil {
		return err
	}

	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return nil
	}
	d.submitting = true
	gen := d.generation
	d.mu.Unlock()

	_, err := d.links.CreateLink(ctx, domain.Link{TripID: d.tripID, Title: title, URL: rawURL})

	d.mu.Lock()
	if gen != d.generation {
		d.mu.Unlock()
		return nil
	}
	d.submitting = false
	d.mu.Unlock()
	if err != nil {
		d.opts.log.ErrorContext(ctx, "create link failed", "trip_id", d.tripID, "error", err)
		return fmt.Errorf("wizard.Details.AddLink: %w", err)
	}
	return d.refreshLinks(ctx)
}

// Discard marks the tab as gone. Calls resolving afterwards are ignored.
func (d *Details) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
}

func (d *Details) refreshLinks(ctx context.Context) error {
	gen := d.currentGeneration()
	links, err := d.links.ListLinks(ctx, d.tripID)
	if err != nil {
		d.opts.log.ErrorContext(ctx, "list links failed", "trip_id", d.tripID, "error", err)
		return fmt.Errorf("wizard.Details.Refresh: links: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen == d.generation {
		d.linkList = links
	}
	return nil
}

func (d *Details) refreshParticipants(ctx context.Context) error {
	gen := d.currentGeneration()
	people, err := d.people.ListParticipants(ctx, d.tripID)
	if err != nil {
		d.opts.log.ErrorContext(ctx, "list participants failed", "trip_id", d.tripID, "error", err)
		return fmt.Errorf("wizard.Details.Refresh: participants: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen == d.generation {
		d.participants = people
	}
	return nil
}

func (d *Details) currentGeneration() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}

// ValidateLink checks a link before it is sent to the API: the title must
// not be blank and the URL must be an absolute http or https URL.
func ValidateLink(title, rawURL string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: link title is required", domain.ErrValidation)
	}
	if !ValidURL(rawURL) {
		return fmt.Errorf("%w: link URL is invalid", domain.ErrValidation)
	}
	return nil
}

// ValidURL reports whether raw is an absolute http(s) URL with a host.
func ValidURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
