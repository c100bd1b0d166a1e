package interfaces

import "errors"

var (
	// ErrNotFound is returned when the requested identifier does not exist in the store.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would violate a unique constraint.
	ErrConflict = errors.New("record conflicts with an existing one")
)
