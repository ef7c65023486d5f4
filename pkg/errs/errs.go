// Package errs defines the error taxonomy shared by services and the HTTP boundary.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation              = errors.New("validation failed")
	ErrAuthRequired            = errors.New("authentication required")
	ErrNotFound                = errors.New("not found")
	ErrConflict                = errors.New("conflict")
	ErrCollaboratorUnavailable = errors.New("service unavailable")
	ErrCollaboratorTimeout     = errors.New("service timeout")
)

// Validation wraps ErrValidation with a client-facing message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with the missing entity name.
func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// Status maps err to the HTTP status of its class. Unclassified errors are 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrCollaboratorUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrCollaboratorTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
