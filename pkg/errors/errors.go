// Package errors provides the coded error type used across guess.
//
// Every failure that crosses a package boundary is a *GuessError carrying a
// stable ErrorCode, so callers (and tests) can branch on the code instead of
// matching message text.
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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Interpretation errors
	ErrParse             ErrorCode = "PARSE"
	ErrUnrecognizedInput ErrorCode = "UNRECOGNIZED_INPUT"
	ErrUnknownDomain     ErrorCode = "UNKNOWN_DOMAIN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// DetailInput is the detail key holding the raw input that failed
const DetailInput = "input"

// GuessError represents a structured error with code and details
type GuessError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GuessError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GuessError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GuessError) Is(target error) bool {
	var targetErr *GuessError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GuessError with the given code and message
func New(code ErrorCode, message string) *GuessError {
	return &GuessError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GuessError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GuessError {
	return &GuessError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GuessError
func Wrap(err error, code ErrorCode, message string) *GuessError {
	if err == nil {
		return nil
	}
	return &GuessError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GuessError {
	if err == nil {
		return nil
	}
	return &GuessError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GuessError) WithDetail(key string, value interface{}) *GuessError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var guessErr *GuessError
	if errors.As(err, &guessErr) {
		return guessErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GuessError
func GetErrorCode(err error) ErrorCode {
	var guessErr *GuessError
	if errors.As(err, &guessErr) {
		return guessErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GuessError
func GetErrorDetails(err error) map[string]interface{} {
	var guessErr *GuessError
	if errors.As(err, &guessErr) {
		return guessErr.Details
	}
	return nil
}

// Unrecognized builds the user-facing error returned when no interpreter
// accepts raw.
func Unrecognized(raw string) *GuessError {
	return Newf(ErrUnrecognizedInput, "unable to interpret %q", raw).
		WithDetail(DetailInput, raw)
}

// Parse builds the error an interpreter returns when asked to interpret
// input its CanInterpret would have rejected.
func Parse(domain, raw string) *GuessError {
	return Newf(ErrParse, "%s cannot interpret %q", domain, raw).
		WithDetail(DetailInput, raw).
		WithDetail("domain", domain)
}

// Input returns the raw input carried by err, if any.
func Input(err error) (string, bool) {
	raw, ok := GetErrorDetails(err)[DetailInput].(string)
	return raw, ok
}
