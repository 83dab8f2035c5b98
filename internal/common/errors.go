// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Category errors.
	ErrUnknownCategory    = errors.New("unknown category")
	ErrMalformedHierarchy = errors.New("malformed category hierarchy")

	// Record errors.
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidRecordFormat = errors.New("invalid record format")
	ErrInvalidAmount       = errors.New("invalid amount")

	// Ledger file errors.
	ErrNoLedger      = errors.New("ledger file does not exist")
	ErrCorruptLedger = errors.New("ledger file is corrupted")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
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
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message meant for the user if err carries one,
// otherwise the plain error text.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
