package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Roster errors
	ErrNotFound      = errors.New("player not found")
	ErrDuplicateName = errors.New("player is already on the roster")
	ErrInvalidSwap   = errors.New("invalid substitution")
	ErrValidation    = errors.New("validation failed")

	// Storage errors
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// ValidationError describes a single rejected input field.
// It unwraps to ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SwapError explains why a substitution was refused. It unwraps to ErrInvalidSwap.
type SwapError struct {
	Reason string
}

func (e *SwapError) Error() string {
	return "invalid substitution: " + e.Reason
}

func (e *SwapError) Unwrap() error {
	return ErrInvalidSwap
}
