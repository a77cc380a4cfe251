// Package errors provides the structured error type used across Loom's
// supporting surfaces.
package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryHost     Category = "host"
	CategoryProtocol Category = "protocol"
)

// Error is a structured error with a stable code and category.
type Error struct {
	// Code is a unique error identifier (e.g., "L001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, when one helps.
	Detail string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error.
func New(code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

// Wrap creates a structured error around a cause.
func Wrap(err error, code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message, Err: err}
}

// WithDetail attaches a longer explanation and returns the error.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}
