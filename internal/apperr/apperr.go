// Package apperr defines the error kinds the services surface: validation
// failures carry the offending field, not-found failures carry the entity
// and identifier, and the statistics sentinels mark reportable empty or
// partial results.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-range input on a named field,
// including references to inactive or nonexistent entities.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an identifier that does not exist in the state the
// operation requires, e.g. cancelling an already-cancelled folio.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d no encontrado", e.Entity, e.ID)
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

var (
	// ErrNoData: a statistic was requested over an empty sample.
	ErrNoData = errors.New("sin datos en el periodo")
	// ErrInsufficientData: dispersion needs at least 2 data points.
	ErrInsufficientData = errors.New("datos insuficientes")
)

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
