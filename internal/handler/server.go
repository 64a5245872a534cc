// Package handler implements the HTTP handlers of the trip planner API.
// All handlers are methods on Server; they are split into files per resource
// and registered on a chi router by Routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LinkServicer defines the operations the link handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, link domain.Link) (domain.Link, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// ParticipantServicer defines the operations the participant handlers depend on.
type ParticipantServicer interface {
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

// Server holds the dependencies of every handler.
type Server struct {
	trips        TripServicer
	links        LinkServicer
	participants ParticipantServicer
	activities   ActivityServicer
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(trips TripServicer, links LinkServicer, participants ParticipantServicer, activities ActivityServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:        trips,
		links:        links,
		participants: participants,
		activities:   activities,
		log:          log,
	}
}

// Routes returns a router serving every endpoint of the API.
// Middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/links", s.ListLinks)
			r.Post("/links", s.CreateLink)

			r.Get("/participants", s.ListParticipants)

			r.Get("/activities", s.ListActivities)
			r.Post("/activities", s.CreateActivity)
		})
	})

	r.Patch("/participants/{participantID}/confirm", s.ConfirmParticipant)

	return r
}
