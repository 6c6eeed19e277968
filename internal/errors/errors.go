// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeNonNumericInput indicates the salary could not be parsed as an integer
	TypeNonNumericInput Type = "NON_NUMERIC_INPUT"

	// TypeNonPositiveInput indicates the salary parsed but is zero or negative
	TypeNonPositiveInput Type = "NON_POSITIVE_INPUT"

	// TypeInput indicates the input stream could not supply a salary
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeOutput indicates a report rendering error
	TypeOutput Type = "OUTPUT_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// HasType checks if the error is of a specific type
func (e *Error) HasType(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err, or anything it wraps, is an *Error of type t
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.HasType(t)
	}
	return false
}

// NonNumeric creates an error for salary input that is not an integer
func NonNumeric(raw string, cause error) *Error {
	return Wrap(TypeNonNumericInput, "salary must be a whole number", cause).
		WithContext("input", raw)
}

// NonPositive creates an error for a salary that is zero or negative
func NonPositive(value int64) *Error {
	return Newf(TypeNonPositiveInput, "salary must be positive, got %d", value).
		WithContext("value", value)
}

// Input creates an input stream error
func Input(message string, cause error) *Error {
	return Wrap(TypeInput, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Output creates a rendering error
func Output(message string, cause error) *Error {
	return Wrap(TypeOutput, message, cause)
}
