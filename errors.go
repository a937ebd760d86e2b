package shunt

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing routing and registration failures.
const (
	ErrDuplicateCommand  = "DUPLICATE_COMMAND"
	ErrDuplicateCategory = "DUPLICATE_CATEGORY"
	ErrUnknownParent     = "UNKNOWN_PARENT"
	ErrNotFound          = "NOT_FOUND"
	ErrAmbiguous         = "AMBIGUOUS"
	ErrMissingParams     = "MISSING_PARAMS"
	ErrMissingFlag       = "MISSING_FLAG"
	ErrInvalidParam      = "INVALID_PARAM"
	ErrHandler           = "HANDLER"
	ErrConfig            = "CONFIG"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// NewError creates a new structured error with the given code, message, and suggestion.
func NewError(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapError wraps an existing error with a message, defaulting to ErrHandler code.
func WrapError(err error, message string) *Error {
	return &Error{
		Code:    ErrHandler,
		Message: message,
		Cause:   err,
	}
}

// WrapErrorWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapErrorWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with formatted multi-line output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}
