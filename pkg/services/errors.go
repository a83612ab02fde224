// Package services holds the business operations between the HTTP API and
// the queue/engine: mission intake, approval, clarification, cancellation,
// retry, and timeline reads.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidState is returned when an operation does not apply to the
	// mission's current status (e.g. approving a mission that is not
	// awaiting approval).
	ErrInvalidState = errors.New("invalid mission state for operation")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
