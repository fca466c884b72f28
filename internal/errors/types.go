// Package errors defines the structured errors shared by the tracker, its
// storage backends and the command line.
package errors

import "fmt"

// ErrorType is the category an AppError belongs to
type ErrorType int

const (
	// ErrorTypeNotFound reports a habit id the user named that does not exist.
	ErrorTypeNotFound ErrorType = iota
	// ErrorTypeStorage reports a repository read or write that failed.
	ErrorTypeStorage
	// ErrorTypeCorruptData reports a persisted record that could not be decoded.
	ErrorTypeCorruptData
	// ErrorTypeInvalidInput reports malformed command arguments.
	ErrorTypeInvalidInput
	// ErrorTypeTimeout reports a command that ran past the application timeout.
	ErrorTypeTimeout
)

var typeNames = map[ErrorType]string{
	ErrorTypeNotFound:     "not_found",
	ErrorTypeStorage:      "storage",
	ErrorTypeCorruptData:  "corrupt_data",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeTimeout:      "timeout",
}

// String returns the snake_case name of the type
func (et ErrorType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "unknown"
}

// AppError carries a category, a stable code for callers and an optional
// cause. Context holds the structured fields logged with the error.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError of the same type and code, so callers can
// compare against a freshly built error of the same kind.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}

// IsType reports whether the error is of errorType
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records a structured field and returns the error for chaining
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext returns a field recorded with WithContext or by a constructor
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, ok := e.Context[key]
	return value, ok
}
