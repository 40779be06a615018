// Package common defines shared sentinel and typed errors used across the
// validation, storage, and service layers. Callers should use errors.Is /
// errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Uniqueness violations, within the store or within an import batch.
	ErrDuplicateKey = errors.New("duplicate key")

	// Validation errors (local, never wrap a storage failure).
	ErrValidation = errors.New("validation error")
)

// ValidationError reports the first violated field rule during entity
// construction. Construction fails atomically: no fields are populated when
// any rule is violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateKeyError reports a uniqueness violation on a single field.
// Field is the user-facing field label (e.g. "roll number"), Value the
// normalized value that collided.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("record with %s '%s' already exists", e.Field, e.Value)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// StorageError wraps an underlying storage failure with the name of the
// operation that hit it. Domain errors (not found, duplicate key) are never
// wrapped in a StorageError.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
