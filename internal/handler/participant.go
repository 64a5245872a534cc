package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
)

// ListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	people, err := s.participants.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, tripNotFound)
		return
	}

	out := api.ParticipantList{Participants: make([]api.Participant, len(people))}
	for i, p := range people {
		out.Participants[i] = api.FromParticipant(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// ConfirmParticipant handles PATCH /participants/{participantID}/confirm.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participantID")
	if !ok {
		return
	}
	if err := s.participants.Confirm(r.Context(), id); err != nil {
		s.fail(w, r, err, "participant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
