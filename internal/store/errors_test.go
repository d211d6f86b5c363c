package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrQuestionNotFound",
			err:      ErrQuestionNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrCategoryNotFound",
			err:      fmt.Errorf("failed to load category: %w", ErrCategoryNotFound),
			expected: true,
		},
		{
			name:     "ErrInvalidEntity",
			err:      ErrInvalidEntity,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEntityNotFoundErrorsAreDistinct(t *testing.T) {
	if errors.Is(ErrQuestionNotFound, ErrCategoryNotFound) {
		t.Error("ErrQuestionNotFound should not match ErrCategoryNotFound")
	}
	if got := ErrQuestionNotFound.Error(); got != "entity not found: question" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestIsInvalidEntityError(t *testing.T) {
	wrapped := fmt.Errorf("%w: foreign key violation", ErrInvalidEntity)
	if !IsInvalidEntityError(wrapped) {
		t.Error("expected wrapped ErrInvalidEntity to be detected")
	}
	if IsInvalidEntityError(ErrNotFound) {
		t.Error("ErrNotFound is not an invalid entity error")
	}
}

func TestStoreError(t *testing.T) {
	// Create a store error
	originalErr := errors.New("database connection failed")
	storeErr := NewStoreError("question", "create", "database error", originalErr)

	// Test Error method
	expectedErrorString := "create operation on question failed: database error: database connection failed"
	if got := storeErr.Error(); got != expectedErrorString {
		t.Errorf("StoreError.Error() = %v, want %v", got, expectedErrorString)
	}

	// Test errors.Is with the wrapped error
	if !errors.Is(storeErr, originalErr) {
		t.Errorf("errors.Is() not recognizing the wrapped error")
	}

	// Without a wrapped error
	bare := NewStoreError("category", "list", "no rows", nil)
	if got := bare.Error(); got != "list operation on category failed: no rows" {
		t.Errorf("StoreError.Error() = %v", got)
	}
}
