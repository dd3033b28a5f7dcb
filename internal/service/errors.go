package service

import (
	"errors"
	"fmt"
)

// ErrGeneratorUnavailable is returned when the service was built without
// a generator.
var ErrGeneratorUnavailable = errors.New("generator unavailable")

// ServiceError wraps errors from a service with the failing operation.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "generate_cards")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As chains.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
