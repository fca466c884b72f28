package validation

import (
	"habit-tracker/internal/config"
	"habit-tracker/internal/domain"
)

// HabitValidator provides validation for habit names and persisted tracker records
type HabitValidator struct {
	validator *Validator
}

// NewHabitValidator creates a new habit validator with default limits
func NewHabitValidator() *HabitValidator {
	return &HabitValidator{
		validator: NewValidator(),
	}
}

// NewHabitValidatorWithConfig creates a habit validator honouring configured limits
func NewHabitValidatorWithConfig(cfg *config.Config) *HabitValidator {
	return &HabitValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateHabitName validates a proposed habit name
func (hv *HabitValidator) ValidateHabitName(name string) error {
	validationError := NewValidationError()

	trimmedName := hv.validator.TrimAndValidateString(name)
	if !hv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("habit_name")
		return validationError
	}

	if !hv.validator.IsValidNameLength(trimmedName) {
		validationError.AddInvalidLengthError("habit_name", trimmedName, hv.validator.NameMaxLength())
	}

	return validationError.ErrorOrNil()
}

// CleanHabitName returns the trimmed name if it is acceptable
func (hv *HabitValidator) CleanHabitName(name string) (string, error) {
	if err := hv.ValidateHabitName(name); err != nil {
		return "", err
	}
	return hv.validator.TrimAndValidateString(name), nil
}

// ValidateHabits checks a habit list read back from storage: ids must be
// unique and non-negative, names non-empty. Length limits are not applied
// to stored names so a lowered limit never discards existing data.
func (hv *HabitValidator) ValidateHabits(habits []domain.Habit) error {
	validationError := NewValidationError()
	seen := make(map[int]bool, len(habits))

	for _, habit := range habits {
		if !hv.validator.IsValidHabitID(habit.ID) {
			validationError.AddInvalidValueError("habit_id", habit.ID, "must not be negative")
		}
		if seen[habit.ID] {
			validationError.AddDuplicateError("habit_id", habit.ID)
		}
		seen[habit.ID] = true

		if !hv.validator.IsNonEmptyString(habit.Name) {
			validationError.AddRequiredError("habit_name")
		}
	}

	return validationError.ErrorOrNil()
}

// ValidateStreak checks a streak count read back from storage
func (hv *HabitValidator) ValidateStreak(streak int) error {
	if streak < 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("streak", streak, "must not be negative")
		return validationError
	}
	return nil
}
