// Package errors provides structured error types for permrank.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the codec library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - RANK_*, OVERFLOW: Rank range and integer width failures
//   - CONFIG_*: Configuration loading failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDigit, "digit %d at position %d exceeds %d", d, i, max)
//	if errors.Is(err, errors.ErrCodeInvalidDigit) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConfig, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidPermutation Code = "INVALID_PERMUTATION"
	ErrCodeInvalidDigit       Code = "INVALID_DIGIT"
	ErrCodeInvalidSize        Code = "INVALID_SIZE"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeUnsortedElements   Code = "UNSORTED_ELEMENTS"

	// Rank errors
	ErrCodeRankOutOfRange Code = "RANK_OUT_OF_RANGE"
	ErrCodeOverflow       Code = "OVERFLOW"

	// Configuration errors
	ErrCodeConfig Code = "CONFIG_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// DigitError describes a Lehmer digit outside its factorial-base range.
type DigitError struct {
	Position int // 0-based position of the digit
	Digit    int // Offending value
	Max      int // Largest value allowed at Position
}

// Error implements the error interface.
func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid factoradic digit %d at position %d (allowed 0..%d)", e.Digit, e.Position, e.Max)
}

// Code returns the error code for this error type.
func (e *DigitError) Code() Code {
	return ErrCodeInvalidDigit
}
