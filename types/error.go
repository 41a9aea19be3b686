package types

import "fmt"

// ErrorCode represents a unified error code across the engine.
type ErrorCode string

// Generation error codes
const (
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrUnknownTemplate     ErrorCode = "UNKNOWN_TEMPLATE_TYPE"
	ErrGeneratorFailure    ErrorCode = "GENERATOR_FAILURE"
	ErrAnalyzerUnavailable ErrorCode = "ANALYZER_UNAVAILABLE"
	ErrAnalyzerTimeout     ErrorCode = "ANALYZER_TIMEOUT"
	ErrUnknownCulture      ErrorCode = "UNKNOWN_CULTURE"
	ErrStoreUnavailable    ErrorCode = "STORE_UNAVAILABLE"
	ErrEngineClosed        ErrorCode = "ENGINE_CLOSED"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Cause     error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithRetryable marks the error as retryable.
func (e *Error) WithRetryable(retryable bool) *Error {
	e.Retryable = retryable
	return e
}

// NewUnknownTemplateError creates the fatal error raised when a piece
// references a type tag with no registered template.
func NewUnknownTemplateError(typeTag string) *Error {
	return NewError(ErrUnknownTemplate, fmt.Sprintf("no template registered for type %q", typeTag))
}

// NewAnalyzerUnavailableError creates the recoverable error that triggers
// the fallback generation path.
func NewAnalyzerUnavailableError(cause error) *Error {
	return NewError(ErrAnalyzerUnavailable, "requirement analyzer unavailable").
		WithRetryable(true).
		WithCause(cause)
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Retryable
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}

// IsErrorCode checks whether err is a *Error carrying the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
