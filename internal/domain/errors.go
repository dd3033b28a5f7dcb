package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	// ErrValidation is the parent of all validation failures.
	ErrValidation = errors.New("validation error")

	// ErrEmptyContent is returned when the content to generate from is blank.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidCardCount is returned when num_cards is out of range.
	ErrInvalidCardCount = errors.New("invalid card count")

	// ErrInvalidCard is returned when a card is missing a side.
	ErrInvalidCard = errors.New("invalid card")

	// ErrUnexpectedStatus is returned when the generation endpoint answers
	// with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse is returned when the generation endpoint's body
	// isn't a card set.
	ErrMalformedResponse = errors.New("malformed response body")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes the underlying sentinel.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
