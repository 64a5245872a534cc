package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ListLinks handles GET /trips/{tripID}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	links, err := s.links.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}

	out := api.LinkList{Links: make([]api.Link, len(links))}
	for i, l := range links {
		out.Links[i] = api.FromLink(l)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateLink handles POST /trips/{tripID}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var body api.CreateLinkRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.links.Create(r.Context(), domain.Link{TripID: tripID, Title: body.Title, URL: body.URL})
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, api.FromLink(created))
}
