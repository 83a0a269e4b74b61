package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Target errors
	ErrTargetInvalid          ErrorCode = "TARGET_INVALID"
	ErrMissingConfiguration   ErrorCode = "MISSING_CONFIGURATION"
	ErrDuplicateConfiguration ErrorCode = "DUPLICATE_CONFIGURATION"

	// Aggregation errors
	ErrInvalidArtifactPath ErrorCode = "INVALID_ARTIFACT_PATH"

	// Generator errors
	ErrGeneratorWrite ErrorCode = "GENERATOR_WRITE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// PodbundleError represents a structured error with code and details
type PodbundleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PodbundleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PodbundleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PodbundleError) Is(target error) bool {
	var targetErr *PodbundleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PodbundleError with the given code and message
func New(code ErrorCode, message string) *PodbundleError {
	return &PodbundleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PodbundleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PodbundleError {
	return &PodbundleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PodbundleError
func Wrap(err error, code ErrorCode, message string) *PodbundleError {
	if err == nil {
		return nil
	}
	return &PodbundleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PodbundleError {
	if err == nil {
		return nil
	}
	return &PodbundleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PodbundleError) WithDetail(key string, value interface{}) *PodbundleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var podErr *PodbundleError
	if errors.As(err, &podErr) {
		return podErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PodbundleError
func GetErrorCode(err error) ErrorCode {
	var podErr *PodbundleError
	if errors.As(err, &podErr) {
		return podErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PodbundleError
func GetErrorDetails(err error) map[string]interface{} {
	var podErr *PodbundleError
	if errors.As(err, &podErr) {
		return podErr.Details
	}
	return nil
}
