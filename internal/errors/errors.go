// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Domain packages wrap these sentinels so callers
// can branch on the category with Is.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a credential could not be authenticated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates a required value was not supplied or could not be located.
	ErrNotFound = errors.New("not found")
)

// Wrap wraps an error with additional context while preserving the error chain.
// Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
