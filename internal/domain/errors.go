package domain

import (
	"fmt"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// BackendError is returned when the backend API answers with a non-2xx status
type BackendError struct {
	StatusCode int
	// Message is the "message" field of a JSON error body, when there is one
	Message string
	Body    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("Backend error: %d - %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether the backend answered 404
func (e *BackendError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized reports whether the backend rejected the bearer token
func (e *BackendError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
