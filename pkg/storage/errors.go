package storage

import "errors"

// Sentinel errors shared by all storage backends.
var (
	// ErrAlreadyInTx is returned by Begin when the handle is already
	// transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a handle that never
	// started a transaction.
	ErrNotInTx = errors.New("not in tx")

	// ErrEmailExists is returned when inserting or updating a user would
	// violate the unique constraint on the email column.
	ErrEmailExists = errors.New("email already exists")
	// ErrUsernameExists is returned when inserting or updating a user would
	// violate the unique constraint on the username column.
	ErrUsernameExists = errors.New("username already exists")
)
