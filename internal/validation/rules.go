// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/apikeys/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// ValidUTF8 validates that a string is valid UTF-8, so it survives JSON encoding unchanged.
var ValidUTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8"),
)

// OneOf validates that a string is one of the allowed values, compared case-sensitively.
func OneOf(allowed ...string) validation.Rule {
	values := make([]any, len(allowed))
	for i, a := range allowed {
		values[i] = a
	}
	return validation.In(values...).Error("must be one of: " + strings.Join(allowed, ", "))
}
