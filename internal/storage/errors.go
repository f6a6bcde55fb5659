package storage

import "errors"

// Store errors. Stores are append-only and live only as long as the process.
var (
	// ErrNotFound is returned when a requested run or aggregate does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a run or aggregate key is inserted twice.
	ErrDuplicateKey = errors.New("duplicate key: append-only store does not allow updates")

	// ErrInvalidInput is returned when a record is missing its key fields.
	ErrInvalidInput = errors.New("invalid input")
)
