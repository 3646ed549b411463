// Package domain contains quiz entities, judging rules and errors.
// Domain errors describe quiz-level failures, NOT console or process errors.
// Adapters decide how each one is surfaced to the user.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity (usually a subject) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates question or bank data broke an invariant.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedInput indicates a response could not be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange indicates a parsed choice is not one of the offered options.
	ErrOutOfRange = errors.New("choice out of range")

	// ErrInputClosed indicates the answer source has no more input.
	ErrInputClosed = errors.New("input closed")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ParseError reports a response that is not a number.
type ParseError struct {
	Input string
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a choice: %v", e.Input, e.Cause)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ParseError) Unwrap() error {
	return ErrMalformedInput
}

// NewParseError creates a parse error for the given raw input.
func NewParseError(input string, cause error) error {
	return &ParseError{Input: input, Cause: cause}
}

// OutOfRangeError reports a numeric choice outside [Min, Max].
type OutOfRangeError struct {
	Choice int
	Min    int
	Max    int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("choice %d outside %d-%d", e.Choice, e.Min, e.Max)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// NewOutOfRangeError creates an out of range error.
func NewOutOfRangeError(choice, lo, hi int) error {
	return &OutOfRangeError{Choice: choice, Min: lo, Max: hi}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidResponse reports whether err means the user's response could not be
// judged, either because it was malformed or out of range.
func IsInvalidResponse(err error) bool {
	return errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrOutOfRange)
}

// IsInputClosed checks if an error signals the end of input.
func IsInputClosed(err error) bool {
	return errors.Is(err, ErrInputClosed)
}
