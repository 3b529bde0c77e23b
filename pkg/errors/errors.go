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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Markup-layer errors
	ErrXMLSyntax        ErrorCode = "XML_SYNTAX"
	ErrUnmatchedDocType ErrorCode = "UNMATCHED_DOCTYPE"
	ErrNoFontconfig     ErrorCode = "NO_FONTCONFIG"
	ErrInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrUnexpectedEOF    ErrorCode = "UNEXPECTED_EOF"

	// Coercion errors
	ErrUnknownVariant  ErrorCode = "UNKNOWN_VARIANT"
	ErrUnknownOperator ErrorCode = "UNKNOWN_OPERATOR"
	ErrParseInt        ErrorCode = "PARSE_INT"
	ErrParseFloat      ErrorCode = "PARSE_FLOAT"
	ErrParseBool       ErrorCode = "PARSE_BOOL"

	// Property typing errors
	ErrPropertyConvert  ErrorCode = "PROPERTY_CONVERT"
	ErrConstantProperty ErrorCode = "CONSTANT_PROPERTY"

	// Merge/include errors
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrIncludeCycle ErrorCode = "INCLUDE_CYCLE"
	ErrIncludeDepth ErrorCode = "INCLUDE_DEPTH"

	// Tool configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FontconfError represents a structured error with code and details
type FontconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FontconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FontconfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FontconfError) Is(target error) bool {
	var targetErr *FontconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FontconfError with the given code and message
func New(code ErrorCode, message string) *FontconfError {
	return &FontconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FontconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FontconfError {
	return &FontconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FontconfError
func Wrap(err error, code ErrorCode, message string) *FontconfError {
	if err == nil {
		return nil
	}
	return &FontconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FontconfError {
	if err == nil {
		return nil
	}
	return &FontconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FontconfError) WithDetail(key string, value interface{}) *FontconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fcErr *FontconfError
	if errors.As(err, &fcErr) {
		return fcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FontconfError
func GetErrorCode(err error) ErrorCode {
	var fcErr *FontconfError
	if errors.As(err, &fcErr) {
		return fcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FontconfError
func GetErrorDetails(err error) map[string]interface{} {
	var fcErr *FontconfError
	if errors.As(err, &fcErr) {
		return fcErr.Details
	}
	return nil
}
