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

// ErrConflict indicates that the request conflicts with the current state of the resource,
// e.g. editing a posted entry or deleting a bank-linked account directly.
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConcurrency indicates that a write could not be serialized against concurrent writers.
var ErrConcurrency = errors.New("concurrent modification")

// ErrInternal indicates an unexpected failure in the storage or infrastructure layer.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and message.
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

// Is reports 5xx app errors as ErrInternal unless the wrapped cause says otherwise.
func (e *AppError) Is(target error) bool {
	return target == ErrInternal && e.Code >= 500
}
