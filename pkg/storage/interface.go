// Package storage declares the persistence interfaces the service is built
// against. Backends such as PostgreSQL provide the concrete implementations,
// including transaction handling.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage bundles every repository the service persists through, the user
// accounts and their tasks.
type AllStorage interface {
	UserStorage
	TaskStorage
}

// TxStorage is a storage handle bound to an open database transaction. It
// offers the same repositories as AllStorage plus control over the
// transaction's outcome. A handle must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists everything done through this handle.
	Commit() error
	// Rollback discards everything done through this handle.
	Rollback() error
}

// Storage is the root, non-transactional handle. Besides the repositories it
// manages the backend's lifecycle and hands out transactions.
type Storage interface {
	AllStorage

	// Close releases the backend's resources, such as its connection pool.
	// The handle is unusable afterwards.
	Close() error

	// Begin opens a transaction and returns a handle scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx opens a transaction, runs cb with its handle, and commits when
	// cb returns nil. Any error from cb rolls the transaction back.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
