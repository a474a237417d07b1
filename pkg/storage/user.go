package storage

import (
	"context"

	"taskhub/pkg/domain"
)

// UserStorage defines CRUD and query operations related to users. Absent rows
// are reported as (nil, nil) rather than an error so callers can decide how
// absence maps onto their own error taxonomy.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row as it exists in the
	// database. A uniqueness violation on the email or username column is
	// returned as ErrEmailExists or ErrUsernameExists respectively.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by email address. Returns nil when not found.
	UserByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	// UserByUsername fetches a user by username. Returns nil when not found.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// EmailTaken reports whether a user with the given email already exists.
	EmailTaken(ctx context.Context, email domain.Email) (bool, error)
	// UsernameTaken reports whether a user with the given username already exists.
	UsernameTaken(ctx context.Context, username string) (bool, error)
	// UpdateUser persists the mutable fields of the given user and returns the
	// updated row, or nil when the user no longer exists. Uniqueness violations
	// map to ErrEmailExists / ErrUsernameExists as in StoreUser.
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// DeleteUser removes a user. It reports whether a row was actually deleted.
	DeleteUser(ctx context.Context, id domain.UserID) (bool, error)
	// Users returns a page of users ordered by creation time descending.
	Users(ctx context.Context, limit, offset uint) ([]domain.User, error)
}
