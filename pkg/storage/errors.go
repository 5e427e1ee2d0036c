package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a uniqueness constraint
	// (email, phone number, plot number).
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a delete or write violates a foreign key,
	// e.g. deleting a plot that orders still point at or referencing an unknown council.
	ErrReferenced = errors.New("foreign key violation")
)
