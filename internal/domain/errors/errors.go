// Package errors defines the application error model shared by all layers.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
// The copy still matches the original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business error code, so WithDetails copies remain
// identifiable via errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// ErrInvalidParameter rejects an unsupported report query argument.
	ErrInvalidParameter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARAMETER",
		"invalid query parameter",
		"",
	)

	// ErrValidationFailed rejects malformed registration or request input.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrDuplicateUser is returned when a user name is already registered.
	ErrDuplicateUser = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USER",
		"user name already registered",
		"",
	)

	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the name or the password was wrong.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	// ErrUnauthorized rejects requests without a valid session token.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid session token",
		"",
	)

	// ErrNotFound is returned for lookups by identifier with no match.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// ErrInternalError is the fallback for unclassified failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StoreFailureError represents an underlying persistence error,
// surfaced as a generic 500 with the cause message passed through.
type StoreFailureError struct {
	err     error
	details string
}

// NewStoreFailureError creates a store-related error.
func NewStoreFailureError(err error, details string) AppError {
	return &StoreFailureError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *StoreFailureError) Error() string {
	return errors.Wrap(e.err, "store operation failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *StoreFailureError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StoreFailureError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *StoreFailureError) ErrorCode() string {
	return "STORE_FAILURE"
}

// Message returns the user-facing error message.
func (e *StoreFailureError) Message() string {
	if e.err != nil {
		return e.err.Error()
	}

	return "store operation failed"
}

// Details returns detailed error information.
func (e *StoreFailureError) Details() string {
	return e.details
}
