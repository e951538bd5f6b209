package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation error")
	ErrImmutableField = errors.New("immutable field")
	ErrInconsistent   = errors.New("inconsistent")
)

// Field validation messages shared by entity packages.
const (
	MsgRequired = "is required"
	MsgNil      = "must not be nil"
	MsgForeign  = "belongs to a different catalog"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the failing fields in sorted order so messages are stable.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError returns a *ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ImmutableFieldError reports an attempt to change a field that is fixed once
// the entity exists (an author's name, an article's title).
type ImmutableFieldError struct {
	Entity string
	Field  string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s cannot be changed after creation", ErrImmutableField.Error(), e.Entity, e.Field)
}

func (e *ImmutableFieldError) Unwrap() error {
	return ErrImmutableField
}
