package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("admin access required")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	ErrUserNotFound         = errors.New("user not found")
	ErrJournalEntryNotFound = errors.New("journal entry not found")
	ErrSolutionNotFound     = errors.New("solution not found")
	ErrUserSolutionNotFound = errors.New("solution not found for user")
)

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return ErrInvalidInput }

// InvalidInput returns an error matching ErrInvalidInput whose message is
// safe to show to the caller.
func InvalidInput(msg string) error {
	return &inputError{msg: msg}
}

// DatabaseError tags a persistence failure so controllers answer 500 while
// the cause stays available for logging.
func DatabaseError(err error) error {
	return fmt.Errorf("%w: %w", ErrDatabaseError, err)
}
