package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ListActivities handles GET /trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	list, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}

	out := api.ActivityList{Activities: make([]api.Activity, len(list))}
	for i, a := range list {
		out.Activities[i] = api.FromActivity(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var body api.CreateActivityRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{TripID: tripID, Title: body.Title, OccursAt: body.OccursAt})
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, api.FromActivity(created))
}
