package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrResourceNotFound is the sentinel behind every not-found condition
	ErrResourceNotFound = errors.New("resource not found")
	// ErrBadRequest marks malformed client input
	ErrBadRequest = errors.New("bad request")
	// ErrValidationFailed marks a request missing required fields
	ErrValidationFailed = errors.New("validation failed")
)

// NewRecordNotFoundError reports that no college form exists for id.
// The message is returned to clients verbatim.
func NewRecordNotFoundError(id int64) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: fmt.Sprintf("No record found with ID: %d", id),
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a new custom error for missing or invalid fields
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
