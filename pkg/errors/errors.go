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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// ErrContract marks a caller bug (misuse of an action or action set).
	// It is never expected to be handled.
	ErrContract ErrorCode = "CONTRACT"

	// Argument errors
	ErrNotAnAction       ErrorCode = "NOT_AN_ACTION"
	ErrInvalidNamespace  ErrorCode = "INVALID_NAMESPACE"
	ErrAmbiguousArgument ErrorCode = "AMBIGUOUS_ARGUMENT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Metadata errors
	ErrMetadataLoad ErrorCode = "METADATA_LOAD"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// PkgflagError represents a structured error with code and details
type PkgflagError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PkgflagError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PkgflagError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PkgflagError) Is(target error) bool {
	var targetErr *PkgflagError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PkgflagError with the given code and message
func New(code ErrorCode, message string) *PkgflagError {
	return &PkgflagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PkgflagError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PkgflagError {
	return &PkgflagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PkgflagError
func Wrap(err error, code ErrorCode, message string) *PkgflagError {
	if err == nil {
		return nil
	}
	return &PkgflagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PkgflagError {
	if err == nil {
		return nil
	}
	return &PkgflagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PkgflagError) WithDetail(key string, value interface{}) *PkgflagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PkgflagError) WithDetails(details map[string]interface{}) *PkgflagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pkgErr *PkgflagError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code == code
	}
	return false
}

// IsParseError reports whether err was caused by a malformed or ambiguous
// argument, as opposed to an unsupported feature or an internal failure.
func IsParseError(err error) bool {
	return IsErrorCode(err, ErrInvalidNamespace) || IsErrorCode(err, ErrAmbiguousArgument)
}

// AsPkgflagError returns the first PkgflagError in err's chain.
func AsPkgflagError(err error) (*PkgflagError, bool) {
	var pkgErr *PkgflagError
	if errors.As(err, &pkgErr) {
		return pkgErr, true
	}
	return nil, false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PkgflagError
func GetErrorCode(err error) ErrorCode {
	var pkgErr *PkgflagError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PkgflagError
func GetErrorDetails(err error) map[string]interface{} {
	var pkgErr *PkgflagError
	if errors.As(err, &pkgErr) {
		return pkgErr.Details
	}
	return nil
}

// UserMessage returns the message of the outermost PkgflagError without the
// code prefix. Other errors are returned as-is.
func UserMessage(err error) string {
	var pkgErr *PkgflagError
	if errors.As(err, &pkgErr) {
		return pkgErr.Message
	}
	return err.Error()
}
