package fic

import (
	"errors"
	"fmt"
	"net/http"
)

// Common API errors
var (
	// ErrNotFound is returned when the requested document or entity does not exist
	// for the configured company.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned when the access token is missing, expired or
	// lacks the scope required by the operation.
	ErrUnauthorized = errors.New("access token rejected")

	// ErrRequestFailed is returned for any other HTTP error status.
	ErrRequestFailed = errors.New("API request failed")

	// ErrUnavailable is returned when the API cannot be reached at all.
	ErrUnavailable = errors.New("API unavailable")

	// ErrInvalidResponse is returned when the response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid API response")

	// ErrInvalidConfiguration is returned by NewClient for an unusable Config.
	ErrInvalidConfiguration = errors.New("invalid API client configuration")
)

// APIError wraps errors with additional context about a failed API call.
type APIError struct {
	// Op is the client operation that failed (e.g., "GetIssuedDocument").
	Op string

	// StatusCode is the HTTP status returned by the API, zero if none.
	StatusCode int

	// Err is the underlying sentinel error.
	Err error

	// Details carries the error message returned by the API, if any.
	Details string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Details != "":
		return fmt.Sprintf("fic: %s failed (HTTP %d): %s: %v", e.Op, e.StatusCode, e.Details, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fic: %s failed (HTTP %d): %v", e.Op, e.StatusCode, e.Err)
	case e.Details != "":
		return fmt.Sprintf("fic: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("fic: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *APIError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewAPIError creates a new APIError with the specified operation and underlying error.
func NewAPIError(op string, err error, details string) *APIError {
	return &APIError{
		Op:      op,
		Err:     err,
		Details: details,
	}
}

// statusError maps an HTTP error status to the matching sentinel.
func statusError(op string, status int, details string) *APIError {
	var err error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		err = ErrUnauthorized
	case http.StatusNotFound:
		err = ErrNotFound
	default:
		err = ErrRequestFailed
	}
	return &APIError{
		Op:         op,
		StatusCode: status,
		Err:        err,
		Details:    details,
	}
}
