package errors

import (
	"errors"
	"fmt"
)

// Domain error types for business logic

var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")
)

// Data-validation errors (fatal for the affected ticker, fatal for the run
// if no ticker survives)

var (
	// ErrDataValidation indicates malformed input data (missing columns,
	// non-numeric fields, non-monotonic dates)
	ErrDataValidation = errors.New("data validation failed")

	// ErrMissingColumn indicates a required CSV column is absent
	ErrMissingColumn = errors.New("required column missing")

	// ErrDuplicateDate indicates a ticker has two bars on the same date
	ErrDuplicateDate = errors.New("duplicate date for ticker")

	// ErrEmptySeries indicates a ticker has no rows after filtering
	ErrEmptySeries = errors.New("empty price series")
)

// Pipeline errors

var (
	// ErrFeatureDisabled indicates an optional feature was turned off via
	// configuration; the corresponding report field stays null
	ErrFeatureDisabled = errors.New("feature disabled")

	// ErrNoTickers indicates the ticker set is empty after filtering,
	// which makes the whole run unrecoverable
	ErrNoTickers = errors.New("no tickers to analyze")
)

// ValidationError represents a validation error with field-specific details
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap lets callers match ValidationError against ErrDataValidation
func (e *ValidationError) Unwrap() error {
	return ErrDataValidation
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// MultiError wraps multiple errors
type MultiError struct {
	Errors []error
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	return fmt.Sprintf("multiple errors (%d): %v", len(m.Errors), m.Errors[0])
}

// Add adds an error to the list
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// HasErrors returns true if there are any errors
func (m *MultiError) HasErrors() bool {
	return len(m.Errors) > 0
}

// ToError returns the MultiError as an error, or nil if no errors
func (m *MultiError) ToError() error {
	if !m.HasErrors() {
		return nil
	}
	return m
}

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
