package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{"name": MsgRequired}}

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("creating author: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &ValidationError{Fields: map[string]string{
		"name":     MsgRequired,
		"category": MsgRequired,
	}}
	wrapped := fmt.Errorf("creating magazine: %w", original)

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("ValidationError.Fields has %d entries, want 2", len(verr.Fields))
	}
}

func TestValidationError_Error_SortedFields(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"name":     "must be 2-16 characters, got 1",
		"category": MsgRequired,
	}}

	want := "validation error: category: is required; name: must be 2-16 characters, got 1"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	verr := NewValidationError("title", MsgRequired)
	if verr.Fields["title"] != MsgRequired {
		t.Errorf("Fields[\"title\"] = %q, want %q", verr.Fields["title"], MsgRequired)
	}
}

func TestImmutableFieldError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("updating author: %w", &ImmutableFieldError{Entity: "author", Field: "name"})

	if !errors.Is(err, ErrImmutableField) {
		t.Error("errors.Is(err, ErrImmutableField) = false, want true")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = true, immutable field errors are a separate kind")
	}

	var ierr *ImmutableFieldError
	if !errors.As(err, &ierr) {
		t.Fatal("errors.As(err, *ImmutableFieldError) = false, want true")
	}
	if ierr.Entity != "author" || ierr.Field != "name" {
		t.Errorf("ImmutableFieldError = %+v, want author.name", ierr)
	}

	want := "immutable field: author.name cannot be changed after creation"
	if got := ierr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrImmutableField", ErrImmutableField},
		{"ErrInconsistent", ErrInconsistent},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
