// Package api defines the JSON bodies exchanged between the trip planner
// API server and its client, and their mapping to domain types.
// Field names are snake_case; trip dates travel as "YYYY-MM-DD".
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every 4xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes used in ErrorDetail.Code.
const (
	CodeNotFound   = "not_found"
	CodeValidation = "validation_error"
	CodeTooLarge   = "request_too_large"
)

// Trip is the representation of domain.Trip.
type Trip struct {
	ID          openapi_types.UUID `json:"id"`
	Destination string             `json:"destination"`
	StartsAt    openapi_types.Date `json:"starts_at"`
	EndsAt      openapi_types.Date `json:"ends_at"`
	IsConfirmed bool               `json:"is_confirmed"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateTripRequest is the body of POST /trips.
type CreateTripRequest struct {
	Destination    string                `json:"destination"`
	StartsAt       openapi_types.Date    `json:"starts_at"`
	EndsAt         openapi_types.Date    `json:"ends_at"`
	EmailsToInvite []openapi_types.Email `json:"emails_to_invite"`
}

// CreateTripResponse is the body of a 201 from POST /trips.
type CreateTripResponse struct {
	TripID openapi_types.UUID `json:"trip_id"`
}

// UpdateTripRequest is the body of PUT /trips/{id}.
type UpdateTripRequest struct {
	Destination string             `json:"destination"`
	StartsAt    openapi_types.Date `json:"starts_at"`
	EndsAt      openapi_types.Date `json:"ends_at"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Link is the representation of domain.Link.
type Link struct {
	ID        openapi_types.UUID `json:"id"`
	TripID    openapi_types.UUID `json:"trip_id"`
	Title     string             `json:"title"`
	URL       string             `json:"url"`
	CreatedAt time.Time          `json:"created_at"`
}

// CreateLinkRequest is the body of POST /trips/{id}/links.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LinkList is the body of GET /trips/{id}/links.
type LinkList struct {
	Links []Link `json:"links"`
}

// Participant is the representation of domain.Participant.
// Name is omitted until the guest fills it in.
type Participant struct {
	ID          openapi_types.UUID  `json:"id"`
	TripID      openapi_types.UUID  `json:"trip_id"`
	Name        *string             `json:"name,omitempty"`
	Email       openapi_types.Email `json:"email"`
	IsConfirmed bool                `json:"is_confirmed"`
}

// ParticipantList is the body of GET /trips/{id}/participants.
type ParticipantList struct {
	Participants []Participant `json:"participants"`
}

// Activity is the representation of domain.Activity.
type Activity struct {
	ID        openapi_types.UUID `json:"id"`
	TripID    openapi_types.UUID `json:"trip_id"`
	Title     string             `json:"title"`
	OccursAt  time.Time          `json:"occurs_at"`
	CreatedAt time.Time          `json:"created_at"`
}

// CreateActivityRequest is the body of POST /trips/{id}/activities.
type CreateActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// ActivityList is the body of GET /trips/{id}/activities.
type ActivityList struct {
	Activities []Activity `json:"activities"`
}

// --- mapping helpers --------------------------------------------------------

// FromTrip converts a domain.Trip into its wire form.
func FromTrip(t domain.Trip) Trip {
	return Trip{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    openapi_types.Date{Time: t.StartsAt},
		EndsAt:      openapi_types.Date{Time: t.EndsAt},
		IsConfirmed: t.IsConfirmed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Domain converts the wire trip back into a domain.Trip.
func (t Trip) Domain() domain.Trip {
	return domain.Trip{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt.Time,
		EndsAt:      t.EndsAt.Time,
		IsConfirmed: t.IsConfirmed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewCreateTripRequest builds the POST /trips body from a draft.
func NewCreateTripRequest(d domain.TripDraft) CreateTripRequest {
	emails := make([]openapi_types.Email, len(d.EmailsToInvite))
	for i, e := range d.EmailsToInvite {
		emails[i] = openapi_types.Email(e)
	}
	return CreateTripRequest{
		Destination:    d.Destination,
		StartsAt:       openapi_types.Date{Time: d.StartsAt},
		EndsAt:         openapi_types.Date{Time: d.EndsAt},
		EmailsToInvite: emails,
	}
}

// Draft converts the request into a domain.TripDraft.
func (r CreateTripRequest) Draft() domain.TripDraft {
	emails := make([]string, len(r.EmailsToInvite))
	for i, e := range r.EmailsToInvite {
		emails[i] = string(e)
	}
	return domain.TripDraft{
		Destination:    r.Destination,
		StartsAt:       r.StartsAt.Time,
		EndsAt:         r.EndsAt.Time,
		EmailsToInvite: emails,
	}
}

// FromLink converts a domain.Link into its wire form.
func FromLink(l domain.Link) Link {
	return Link{ID: l.ID, TripID: l.TripID, Title: l.Title, URL: l.URL, CreatedAt: l.CreatedAt}
}

// Domain converts the wire link back into a domain.Link.
func (l Link) Domain() domain.Link {
	return domain.Link{ID: l.ID, TripID: l.TripID, Title: l.Title, URL: l.URL, CreatedAt: l.CreatedAt}
}

// FromParticipant converts a domain.Participant into its wire form.
func FromParticipant(p domain.Participant) Participant {
	out := Participant{
		ID:          p.ID,
		TripID:      p.TripID,
		Email:       openapi_types.Email(p.Email),
		IsConfirmed: p.IsConfirmed,
	}
	if p.Name != "" {
		name := p.Name
		out.Name = &name
	}
	return out
}

// Domain converts the wire participant back into a domain.Participant.
func (p Participant) Domain() domain.Participant {
	out := domain.Participant{
		ID:          p.ID,
		TripID:      p.TripID,
		Email:       string(p.Email),
		IsConfirmed: p.IsConfirmed,
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	return out
}

// FromActivity converts a domain.Activity into its wire form.
func FromActivity(a domain.Activity) Activity {
	return Activity{ID: a.ID, TripID: a.TripID, Title: a.Title, OccursAt: a.OccursAt, CreatedAt: a.CreatedAt}
}

// Domain converts the wire activity back into a domain.Activity.
func (a Activity) Domain() domain.Activity {
	return domain.Activity{ID: a.ID, TripID: a.TripID, Title: a.Title, OccursAt: a.OccursAt, CreatedAt: a.CreatedAt}
}
