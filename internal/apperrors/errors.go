package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDataIntegrity indicates that a stored record could not be interpreted,
// e.g. a non-numeric amount or an unknown currency code.
var ErrDataIntegrity = errors.New("data integrity error")

// AppError carries an HTTP-ish status code together with the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDataIntegrityError wraps a decoding problem of a stored field so callers can
// detect it with errors.Is(err, ErrDataIntegrity).
func NewDataIntegrityError(field, value string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: field %s has invalid value %q: %v", ErrDataIntegrity, field, value, cause)
	}
	return fmt.Errorf("%w: field %s has invalid value %q", ErrDataIntegrity, field, value)
}
