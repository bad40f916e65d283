package domain

import "fmt"

// AuthError indicates the service rejected the bearer token (401/403).
// It is always fatal for the run.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: status %d: %s", e.Status, e.Body)
}

// NetworkError indicates the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is any other non-2xx response from the service. Fatal when
// fetching; logged and skipped when submitting a single entry.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}
