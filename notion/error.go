package notion

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is raised by the pre-flight validation layer before any
// request is sent. It is always fatal to the call and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError represents an error response from the Notion API.
type APIError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion: %s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("notion: API error (status %d): %s", e.Status, e.Message)
}

// AuthenticationError is returned for 401 responses. The token is missing,
// malformed, or revoked; retrying cannot help.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("notion: authentication failed: %s", e.Message)
}

// NetworkError wraps a transport-level failure where no HTTP response was
// received. Distinct from APIError so callers can tell "the server said no"
// from "the server was never reached".
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("notion: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsRateLimited reports whether err is an APIError with status 429, i.e. the
// retry budget was exhausted while the API kept throttling.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
