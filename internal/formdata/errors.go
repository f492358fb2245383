package formdata

import (
	"errors"
	"net/http"
)

var (
	// ErrNoState indicates the request was not bound to a session.
	ErrNoState = errors.New("no form state bound to request")

	// ErrSessionNotFound indicates the session cookie is missing, malformed, or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionLimit indicates the registry is full.
	ErrSessionLimit = errors.New("session limit reached")
)

// MapHTTPStatus maps form-state errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrSessionNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrSessionLimit) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
