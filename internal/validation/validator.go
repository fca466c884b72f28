package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"habit-tracker/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance with no name length limit
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// isNameSpace reports the whitespace trimmed from habit names: the Zs
// category, tab, vertical tab, form feed, the byte order mark and the
// CR, LF, U+2028 and U+2029 line terminators. U+0085 is not whitespace here.
func isNameSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimName strips leading and trailing whitespace from a habit name. Unlike
// strings.TrimSpace it removes U+FEFF and keeps U+0085.
func TrimName(s string) string {
	return strings.TrimFunc(s, isNameSpace)
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return TrimName(s) != ""
}

// IsValidNameLength checks the trimmed rune count against the configured
// maximum. A maximum of zero means names are unlimited.
func (v *Validator) IsValidNameLength(name string) bool {
	max := v.NameMaxLength()
	if max <= 0 {
		return true
	}
	return utf8.RuneCountInString(TrimName(name)) <= max
}

// IsValidHabitID checks if a habit ID is usable as a stable key
func (v *Validator) IsValidHabitID(id int) bool {
	return id >= 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return TrimName(s)
}

// NameMaxLength returns the configured maximum habit name length, 0 when unlimited
func (v *Validator) NameMaxLength() int {
	if v.config != nil && v.config.Tracker.HabitNameMaxLength > 0 {
		return v.config.Tracker.HabitNameMaxLength
	}
	return 0
}
