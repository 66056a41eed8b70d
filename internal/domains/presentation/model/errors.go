package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePresentationNotFound = "PRES001"
	ErrCodeInvalidArgument      = "PRES002"
	ErrCodeStoreFailure         = "PRES003"
)

// Errors
var (
	// ErrPresentationNotFound covers both an absent record and a record
	// owned by a different user. The two cases are merged deliberately so
	// callers cannot probe for other users' presentations.
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// PresentationError carries an error code alongside the message.
type PresentationError struct {
	Code    string
	Message string
	Err     error
}

func (e *PresentationError) Error() string {
	return e.Message
}

func (e *PresentationError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewNotFoundError() *PresentationError {
	return &PresentationError{
		Code:    ErrCodePresentationNotFound,
		Message: "Presentation not found",
		Err:     ErrPresentationNotFound,
	}
}

func NewInvalidArgumentError(reason string) *PresentationError {
	return &PresentationError{
		Code:    ErrCodeInvalidArgument,
		Message: reason,
		Err:     ErrInvalidArgument,
	}
}

func NewStoreFailureError(err error) *PresentationError {
	return &PresentationError{
		Code:    ErrCodeStoreFailure,
		Message: fmt.Sprintf("store operation failed: %v", err),
		Err:     err,
	}
}
