// Package apperror defines the error taxonomy shared by the store and
// handler layers. Handlers map these to HTTP status codes; everything
// that doesn't match a sentinel is treated as a generic store failure.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// AppError pairs a sentinel with a human-readable message safe to return
// to clients.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation returns an AppError for a rejected input field.
func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

// Conflict returns an AppError for a uniqueness violation.
func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

// NotFound returns an AppError for a missing entity.
func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %d not found", resource, id),
	}
}
