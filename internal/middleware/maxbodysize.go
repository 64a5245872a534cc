package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
)

// NewMaxBodySizeHandler limits request bodies to limit bytes.
// A request whose Content-Length already exceeds the limit is answered with
// 413 before the next handler runs; otherwise the body is wrapped in
// http.MaxBytesReader so reads past the limit fail.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: api.ErrorDetail{
					Code:    api.CodeTooLarge,
					Message: fmt.Sprintf("request body exceeds %d bytes", limit),
				}})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
