package errors

import (
	"errors"
	"fmt"
)

func newAppError(errorType ErrorType, code, message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: context,
	}
}

// NewNotFoundError reports that resource id does not exist
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, "NOT_FOUND",
		fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		map[string]interface{}{"resource": resource, "identifier": identifier})
}

// NewStorageError reports a failed repository operation
func NewStorageError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeStorage, "STORAGE_ERROR",
		fmt.Sprintf("storage operation failed: %s", operation), cause,
		map[string]interface{}{"operation": operation})
}

// NewCorruptDataError reports a persisted record under key that could not be decoded
func NewCorruptDataError(key string, cause error) *AppError {
	return newAppError(ErrorTypeCorruptData, "CORRUPT_DATA",
		fmt.Sprintf("stored record is malformed: %s", key), cause,
		map[string]interface{}{"key": key})
}

// NewInvalidInputError reports a command argument that cannot be used
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, "INVALID_INPUT",
		fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		map[string]interface{}{"field": field, "value": value, "reason": reason})
}

// NewTimeoutError reports an operation that ran past timeout
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newAppError(ErrorTypeTimeout, "TIMEOUT",
		fmt.Sprintf("operation timed out: %s", operation), nil,
		map[string]interface{}{"operation": operation, "timeout": timeout})
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType reports whether err's chain holds an AppError of errorType
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// GetUserMessage returns the text shown to the user for err. Storage and
// data problems get a fixed sentence; the cause only goes to the log.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch appErr.Type {
	case ErrorTypeNotFound, ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeStorage:
		return "Your progress could not be saved. Changes are kept for this session."
	case ErrorTypeCorruptData:
		return "Saved data could not be read and was replaced with defaults."
	case ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the stable code of err, or UNKNOWN_ERROR
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is worth a log line. Mistakes in user
// input are answered on the terminal and not logged.
func ShouldLogError(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type != ErrorTypeNotFound && appErr.Type != ErrorTypeInvalidInput
	}
	return true
}
