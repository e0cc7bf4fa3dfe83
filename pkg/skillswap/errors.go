package skillswap

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response surfaced to the caller. Message carries the
// server's structured "error" field when present, a generic fallback when not.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("skillswap: %s (status %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is an authentication failure. By the
// time a caller sees one, the client has already torn down the session and
// requested navigation to login.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// ValidationError is a request rejected client-side before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("skillswap: invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
