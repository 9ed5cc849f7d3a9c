package bonsai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a structured error from the brain server
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("brain server error (status %d, request_id: %s): %s", e.StatusCode, e.RequestID, e.Message)
	}
	return fmt.Sprintf("brain server error (status %d): %s", e.StatusCode, e.Message)
}

// AuthenticationError represents a credential or login failure. It is always
// fatal to the current command and never retried
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error (status %d): %s", e.StatusCode, e.Message)
}

// NotFoundError reports that a remote entity is absent
type NotFoundError struct {
	Kind string // e.g. "Assessment", "Simulator package"
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found: %v", e.Kind, e.Name, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ConflictError reports a duplicate-name violation on create
type ConflictError struct {
	Kind string
	Name string
	Err  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists: %v", e.Kind, e.Name, e.Err)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// ValidationError represents a client-side validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// The brain server does not publish a machine-readable error contract; the
// observed behavior is that missing entities and duplicate names can only be
// told apart by scanning the error text. The markers below are the single
// home for that matching rule.
const (
	notFoundMarker = "not found"
	conflictMarker = "Unique index constraint violation"
)

// IsNotFoundMessage reports whether err is a server error whose message
// indicates a missing entity. The match is a case-sensitive substring check,
// exactly as observed from the service.
func IsNotFoundMessage(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Message, notFoundMarker)
}

// IsConflictMessage reports whether err is a server error caused by a
// duplicate name on create.
func IsConflictMessage(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Message, conflictMarker)
}

// IsStatusNotFound reports whether err is a server error carrying an embedded
// 404 status code. Simulator package lookups signal absence this way rather
// than through message text.
func IsStatusNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
