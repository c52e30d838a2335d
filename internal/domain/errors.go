package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports the first field of a payload that failed validation.
// The record is never persisted when one of these is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError for a field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Required builds the standard missing-field ValidationError.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// ConflictError reports a uniqueness violation on a specific field
// (email, tradeLicense, trnNumber). Raised from the store's unique
// indexes so concurrent creations are serialized by the database.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "duplicate value"
	}
	// "email" -> "Email already exists", matching the messages the client shows.
	return fmt.Sprintf("%s%s already exists", strings.ToUpper(e.Field[:1]), e.Field[1:])
}

// Conflict builds a ConflictError for a field.
func Conflict(field string) *ConflictError {
	return &ConflictError{Field: field}
}
