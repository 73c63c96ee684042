package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkoutNotFound is returned when no workout has the requested id.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrInvalidID is returned when an id is not a valid store identifier.
	ErrInvalidID = errors.New("invalid workout id")
)

// ValidationError reports a request that failed boundary validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
