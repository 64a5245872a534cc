// Package middleware provides the HTTP middleware of the trip planner API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight.
const preflightMaxAge = 300

// NewCORSHandler applies CORS headers for allowedOrigins. Each entry must be
// a full origin (scheme and host, no trailing slash).
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
