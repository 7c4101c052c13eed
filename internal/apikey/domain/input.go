package domain

import (
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/apikeys/internal/errors"
	customValidation "github.com/allisson/apikeys/internal/validation"
)

// MaxBatchSize caps the number of keys issued by a single batch request.
const MaxBatchSize = 1000

// CreateKeyInput holds the parameters of a key issuance request.
type CreateKeyInput struct {
	Scope string
	Level Level
	Count int
}

// Validate checks the scope encodes losslessly and the level is known. Count is only
// checked when non-zero; zero means a single key.
//
// An unknown level is returned as ErrInvalidLevel so callers can match it with Is.
func (i *CreateKeyInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Scope, customValidation.ValidUTF8),
		validation.Field(&i.Level, validation.By(knownLevel)),
		validation.Field(&i.Count, validation.Min(0), validation.Max(MaxBatchSize)),
	)

	var errs validation.Errors
	if apperrors.As(err, &errs) && apperrors.Is(errs["Level"], ErrInvalidLevel) {
		return errs["Level"]
	}
	return customValidation.WrapValidationError(err)
}

func knownLevel(value any) error {
	l, _ := value.(Level)
	return l.Validate()
}
