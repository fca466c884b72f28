package validation

import (
	"strings"
	"testing"

	"habit-tracker/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidNameLength(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Tracker.HabitNameMaxLength = 5
	validator := NewValidatorWithConfig(cfg)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Under limit", "Walk", true},
		{"At limit", "Walks", true},
		{"Over limit", "Walking", false},
		{"Surrounding spaces ignored", "  Walks  ", true},
		{"Multibyte runes counted once", "éééé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidNameLength(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidNameLength(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_NameMaxLength(t *testing.T) {
	if got := NewValidator().NameMaxLength(); got != 0 {
		t.Errorf("NameMaxLength() = %d, expected 0 (unlimited)", got)
	}

	cfg := config.NewConfig()
	cfg.Tracker.HabitNameMaxLength = 0
	if got := NewValidatorWithConfig(cfg).NameMaxLength(); got != 0 {
		t.Errorf("NameMaxLength() with zero limit = %d, expected 0", got)
	}

	if !NewValidator().IsValidNameLength(strings.Repeat("a", 10000)) {
		t.Error("names are unlimited by default")
	}
}

func TestValidator_IsValidHabitID(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		id       int
		expected bool
	}{
		{-1, false},
		{0, true},
		{5, true},
	}

	for _, tt := range tests {
		if result := validator.IsValidHabitID(tt.id); result != tt.expected {
			t.Errorf("IsValidHabitID(%d) = %v, expected %v", tt.id, result, tt.expected)
		}
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Surrounding spaces", "  Walk  ", "Walk"},
		{"Tab and newline only", "\t\n", ""},
		{"Byte order mark is whitespace", "\ufeffWalk\ufeff", "Walk"},
		{"Byte order mark alone", "\ufeff", ""},
		{"No-break and ideographic spaces", "\u00a0Walk\u3000", "Walk"},
		{"Line and paragraph separators", "\u2028Walk\u2029", "Walk"},
		{"Next line is kept", "\u0085Walk", "\u0085Walk"},
		{"Inner spaces kept", " Walk  the dog ", "Walk  the dog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.TrimAndValidateString(tt.input); got != tt.expected {
				t.Errorf("TrimAndValidateString(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsNonEmptyString_ByteOrderMark(t *testing.T) {
	if NewValidator().IsNonEmptyString("\ufeff \ufeff") {
		t.Error("a name made of byte order marks and spaces is empty")
	}
}
