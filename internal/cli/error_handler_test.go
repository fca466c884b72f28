package cli

import (
	"errors"
	"fmt"
	"testing"

	apperrors "habit-tracker/internal/errors"
	"habit-tracker/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("habit_name")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "rename habit",
			err:       ve,
			expected:  "failed to rename habit: habit_name is required",
		},
		{
			name:      "Wrapped validation error",
			operation: "rename habit",
			err:       fmt.Errorf("tracker: %w", ve),
			expected:  "failed to rename habit: habit_name is required",
		},
		{
			name:      "Not found error",
			operation: "toggle habit",
			err:       apperrors.NewNotFoundError("habit", "9"),
			expected:  "failed to toggle habit: habit not found: 9",
		},
		{
			name:      "Storage error",
			operation: "reset day",
			err:       apperrors.NewStorageError("set habits", errors.New("disk full")),
			expected:  "failed to reset day: Your progress could not be saved. Changes are kept for this session.",
		},
		{
			name:      "Invalid input error",
			operation: "toggle habit",
			err:       apperrors.NewInvalidInputError("id", "x", "habit id must be a number"),
			expected:  "failed to toggle habit: invalid input for id: habit id must be a number",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}

	if eh.Handle("noop", nil) != nil {
		t.Error("Handle(nil) should return nil")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("habit_name")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("habit", "9"),
			expected: "habit not found: 9",
		},
		{
			name:     "Timeout error",
			err:      apperrors.NewTimeoutError("load", "30s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Wrapped validation error",
			err:      fmt.Errorf("rename: %w", ve),
			expected: "habit_name is required",
		},
		{
			name:     "Regular error",
			err:      errors.New("plain"),
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eh.HandleSimple(tt.err).Error(); got != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", got, tt.expected)
			}
		})
	}
}
