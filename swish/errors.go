// ABOUTME: Error types and handling for the Swish library
// ABOUTME: Provides structured errors with context for library operations

package swish

import (
	"errors"
	"fmt"

	domainerrors "swish-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates Reddit could not be reached or refused the request
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// wrapError converts core errors into library errors
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return NewError(ErrorTypeValidation, validationErr.Message).
			WithCause(err).
			WithContext("field", validationErr.Field)
	}

	var notFoundErr *domainerrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewError(ErrorTypeNotFound, notFoundErr.Resource+" not found").
			WithCause(err).
			WithContext("id", notFoundErr.ID)
	}

	var apiErr *domainerrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		return NewError(ErrorTypeNetwork, "reddit request failed").
			WithCause(err).
			WithContext("status", apiErr.StatusCode)
	}

	return NewError(ErrorTypeInternal, "operation failed").WithCause(err)
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}
