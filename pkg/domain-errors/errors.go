// Package domainerrors provides coded errors for boundary validation.
//
// The normalizer core never uses errors as control flow for in-progress
// typing; these codes classify final results at trust boundaries so the UI
// layer can decide whether to block submission or merely display a hint.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error.
type Code string

const (
	// CodeInvalidInput marks input that can never become valid (wrong type,
	// unsupported enum value).
	CodeInvalidInput Code = "invalid_input"

	// CodeIncompleteInput marks input the user is still typing. Not a user
	// facing error: dependent fields simply are not derived yet.
	CodeIncompleteInput Code = "incomplete_input"

	// CodeInvalidFormat marks a complete value that violates a fixed grammar
	// (impossible calendar date, malformed plate).
	CodeInvalidFormat Code = "invalid_format"

	// CodeBoundaryClamp marks a numeric value that was capped rather than
	// rejected (paid amount exceeding the total fee).
	CodeBoundaryClamp Code = "boundary_clamp"

	// CodeUnrecognizedCode marks a structurally valid value whose lookup
	// table entry is missing (unknown state code). Cosmetic only.
	CodeUnrecognizedCode Code = "unrecognized_code"
)

// Error is a domain error carrying a classification code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or the empty code when err is not
// a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
