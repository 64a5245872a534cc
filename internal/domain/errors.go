package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, and by the API client when the server answers 404.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. a short
// destination, an incomplete date range, a malformed e-mail address).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNetwork is returned by the API client for transport failures and for any
// non-success response that is neither a 404 nor a 422.
var ErrNetwork = errors.New("network error")
