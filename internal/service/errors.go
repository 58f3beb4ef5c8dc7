// Package service implements the create, modify and delete workflows for
// plans, equipment and members on top of their record stores.
//
// Services take already-parsed operator input. For Modify calls, an empty
// string or a non-positive number means "keep the current value".
package service

import (
	"errors"
	"fmt"

	"github.com/mmynk/gymdesk/internal/records"
)

var (
	// ErrNotFound is returned when an ID or username matches no record.
	ErrNotFound = records.ErrNotFound

	// ErrCapacityExceeded is returned when creating into a full store.
	ErrCapacityExceeded = records.ErrCapacityExceeded

	// ErrValidationFailed is the parent of every input validation error.
	ErrValidationFailed = errors.New("validation failed")

	ErrEmptyField       = fmt.Errorf("%w: required field is empty", ErrValidationFailed)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidationFailed)
	ErrUsernameTaken    = fmt.Errorf("%w: username already exists", ErrValidationFailed)

	// ErrAlreadySubscribed is returned when subscribing a member to the plan
	// it already has.
	ErrAlreadySubscribed = errors.New("already subscribed to this plan")

	// ErrInvalidCredentials is returned when a password does not match.
	ErrInvalidCredentials = errors.New("incorrect password")
)

func emptyField(name string) error {
	return fmt.Errorf("%w: %s", ErrEmptyField, name)
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
