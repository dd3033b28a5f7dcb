package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/generation"
	"github.com/phrazzld/flashcard-generator/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrInvalidCardCount),
		errors.Is(err, generation.ErrEmptyContent):
		return http.StatusBadRequest

	// The model refused the input
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Upstream model errors
	case errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	case errors.Is(err, service.ErrGeneratorUnavailable),
		errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)

	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, generation.ErrEmptyContent):
		return "Content cannot be empty"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The content was rejected by the language model"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned an unreadable response"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate flashcards"

	case errors.Is(err, service.ErrGeneratorUnavailable),
		errors.Is(err, generation.ErrInvalidConfig):
		return "Flashcard generation is not available"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe.Field()), getValidationTagMessage(fe.Tag()))
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return fmt.Sprintf("must be at least %d", domain.MinCards)
	case "max":
		return fmt.Sprintf("must be at most %d", domain.MaxCards)
	default:
		return "validation failed"
	}
}

// jsonFieldName converts a Go field name like NumCards to num_cards.
func jsonFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
