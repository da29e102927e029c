package k5

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from a K5 service endpoint. It
// carries the HTTP status and, when the service returned a structured error
// body, the provider's title and detail message.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Title      string `json:"title"       yaml:"title"`
	Detail     string `json:"detail"      yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.Title, e.Detail, e.StatusCode)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrRegionRequired       = errors.New("region is required")
	ErrProjectIDRequired    = errors.New("project ID is required")
	ErrNotFound             = errors.New("resource not found")
	ErrSubnetExhausted      = errors.New("subnet has no free addresses")
	ErrExactlyOneSelector   = errors.New("exactly one of subnet ID and port ID must be set")
	ErrSubnetSelectorNeeded = errors.New("exactly one of subnet ID and subnet name must be set")
	ErrIPv4SubnetRequired   = errors.New("free address lookup requires an IPv4 subnet")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrStaticTokenRefresh   = errors.New("static token cannot be refreshed")
)

// IsNotFound reports whether err is a not-found condition: either a failed
// name lookup or a 404 from a service endpoint.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden reports whether err is an authorization failure.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsConflict reports whether err is a conflict with current resource state.
func IsConflict(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusConflict
	}

	return false
}
