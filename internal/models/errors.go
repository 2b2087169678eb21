package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by name, id or value fails.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert would violate a uniqueness rule.
var ErrDuplicate = errors.New("already exists")

// ValidationError reports a field value that failed its shape check.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// AlreadySetError reports a write to a write-once field that is already set.
type AlreadySetError struct {
	Field string
}

func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("%s is already set", e.Field)
}
