package hrclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by Login when the server rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRegistrationFailed is returned by Register for validation failures
	// and duplicate accounts.
	ErrRegistrationFailed = errors.New("registration failed")
	// ErrUnauthenticated is returned when a request is rejected with 401 and
	// no recovery applies: no stored token, or a retry after a successful
	// refresh was rejected again.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrSessionExpired is returned when the session could not be refreshed.
	// The session-expired handler has already fired by the time callers see it.
	ErrSessionExpired = errors.New("session expired")
	// ErrNetworkFailure wraps transport-level errors. The request never
	// produced an HTTP status, so no refresh is attempted.
	ErrNetworkFailure = errors.New("network failure")
)

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}
