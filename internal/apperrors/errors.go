// Package apperrors defines the error taxonomy shared by the store, the
// services, and the HTTP handlers.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that miss. Handlers render it as a
// "not found" state, not as a failure.
var ErrNotFound = errors.New("campaign not found")

// ConflictError reports an insert against an already-used campaign ID.
// IDs are generated fresh per upload, so this only fires on a UUID collision.
type ConflictError struct {
	ID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("campaign %s already exists", e.ID)
}

// ValidationError reports a missing or malformed input field, caught before
// any collaborator call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// TransientError wraps a collaborator failure (database, object storage,
// network). It is surfaced once and never retried.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as a TransientError, or returns nil if err is nil.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Op: op, Err: err}
}
