// ABOUTME: Error taxonomy for training operations.
// ABOUTME: User errors are rendered as plain messages; everything else is a store failure.
package training

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrNotConfirmed is returned by destructive operations called without confirm.
	ErrNotConfirmed = errors.New("deletion not confirmed; set confirm=true to delete")
	// ErrNoChanges is returned by partial updates that supply no fields.
	ErrNoChanges = errors.New("no fields to update provided")
	// ErrDuplicate is returned when an identical workout is already logged.
	ErrDuplicate = errors.New("already logged")
)

// ValidationError reports input outside its declared range or shape.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError names the missing entity and its key.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found for %s", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsUserError reports whether err should be shown to the user as a
// message rather than treated as a failure.
func IsUserError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNotConfirmed) ||
		errors.Is(err, ErrNoChanges) ||
		errors.Is(err, ErrDuplicate)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
