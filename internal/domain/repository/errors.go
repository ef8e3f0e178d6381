package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist, including
	// conditional updates that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate")
)
