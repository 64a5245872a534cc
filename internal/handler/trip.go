package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

const tripNotFound = "trip not found"

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body api.CreateTripRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.trips.Create(r.Context(), body.Draft())
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, api.CreateTripResponse{TripID: created.ID})
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}

	data := make([]api.Trip, len(trips))
	for i, t := range trips {
		data[i] = api.FromTrip(t)
	}
	writeJSON(w, http.StatusOK, api.TripList{
		Data: data,
		Pagination: api.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, api.FromTrip(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var body api.UpdateTripRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          id,
		Destination: body.Destination,
		StartsAt:    body.StartsAt.Time,
		EndsAt:      body.EndsAt.Time,
	})
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, api.FromTrip(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt returns the integer query parameter name, or nil when it is
// absent or malformed.
func queryInt(r *http.Request, name string) *int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &v
}
