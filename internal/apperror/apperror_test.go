package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", Validation("name too short"), ErrValidation},
		{"conflict", Conflict("category exists"), ErrConflict},
		{"not found", NotFound("post", 42), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestWrappedMatching(t *testing.T) {
	// Sentinels must survive fmt.Errorf %w wrapping through call layers.
	err := fmt.Errorf("create category: %w", Conflict("duplicate name"))

	if !errors.Is(err, ErrConflict) {
		t.Error("wrapped conflict not matched by errors.Is")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As failed to extract *AppError")
	}
	if appErr.Message != "duplicate name" {
		t.Errorf("Message = %q, want %q", appErr.Message, "duplicate name")
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("category", 7)
	if err.Error() != "category 7 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}
