package model

import (
	"errors"
	"fmt"
)

// Backend error taxonomy. The gateway classifies every failed call into
// one of these so call sites can branch on errors.Is/As instead of status
// codes.
var (
	// ErrUnauthorized means the backend rejected the caller's credential.
	// Any occurrence globally destroys the session (forced logout).
	ErrUnauthorized = errors.New("backend rejected credentials")

	// ErrForbidden means the credential is valid but lacks the required
	// role (e.g., a non-admin calling user management). Unlike
	// ErrUnauthorized it does not tear down the session.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrBackendUnavailable means the backend could not be reached at all
	// (connection refused, DNS, timeout). Surfaced to users as a
	// "check your connection" class of notice.
	ErrBackendUnavailable = errors.New("auction backend unreachable")

	// ErrNotFound means the addressed resource does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries the backend's inline message for a 400 response.
// It reaches the user as-is; no state changes on validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// Validationf builds a ValidationError with a formatted message. Used for
// boundary validation performed before a request ever reaches the backend.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
