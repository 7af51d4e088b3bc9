// Package common provides shared utilities and types used across the
// application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrInvalidImage indicates a receipt file could not be decoded as
	// PNG or JPEG.
	ErrInvalidImage = errors.New("invalid image")
	// ErrUnsupportedFormat indicates a statement file with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// UserError represents an error that should be shown to the user as-is.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}
