package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrForbidden        = errors.New("operation not permitted for this role")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrWriteFailed      = errors.New("failed to write record")
	ErrFieldRequired    = errors.New("required field is missing")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// writeError classifies an insert failure.
func writeError(what string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", what, ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w: %v", what, ErrWriteFailed, err)
}
