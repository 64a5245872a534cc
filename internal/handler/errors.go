package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404. The caller names what was being looked up
// (e.g. "trip not found").
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, api.CodeNotFound, message)
}

// invalidRequest writes a 422 for input rejected before reaching the
// service layer (e.g. a malformed body or path id).
func invalidRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, api.CodeValidation, message)
}

// fail maps a service error onto the response: domain.ErrNotFound becomes a
// 404 with notFoundMsg, domain.ErrValidation a 422 and anything else a
// logged 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, notFoundMsg)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, api.CodeValidation, unwrapMessage(err))
	default:
		s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into dst. On failure it writes the
// response (413 or 422) and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		invalidRequest(w, "request body is required")
		return false
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, api.CodeTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	invalidRequest(w, "request body is invalid: "+err.Error())
	return false
}

// pathID parses the UUID path parameter name. On failure it writes a 422
// and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		invalidRequest(w, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: destination is required"
// becomes "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 && i+len(prefix) < len(msg) {
		return msg[i+len(prefix):]
	}
	return msg
}
