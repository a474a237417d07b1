package domain

import (
	"strings"
	"time"

	"taskhub/pkg/serrors"
)

// User is an account that can authenticate against the service and own
// tasks. Mutations go through the methods below, which validate their input
// before touching any field and bump UpdatedAt on success.
type User struct {
	// ID is the unique identifier of the user. It never changes after creation.
	ID UserID
	// Email is the validated address the user signs in with.
	Email Email
	// Username is the display name carried inside access tokens.
	Username string
	// HashedPassword is the bcrypt hash of the user's password. The plaintext
	// is never stored.
	HashedPassword string
	// IsActive reports whether the user may authenticate. Inactive users are
	// rejected at login and token refresh.
	IsActive bool

	// CreatedAt is the time the user was registered.
	CreatedAt time.Time
	// UpdatedAt is the time of the last mutation; zero value means never updated.
	UpdatedAt time.Time
}

// NewUser creates a user with a fresh identifier and creation timestamp.
// The username is trimmed and must not be empty; the hashed password must be
// present.
func NewUser(email Email, username, hashedPassword string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, serrors.With(serrors.ErrInvalidArgument, "username cannot be empty")
	}
	if hashedPassword == "" {
		return nil, serrors.With(serrors.ErrInvalidArgument, "hashed password cannot be empty")
	}

	return &User{
		ID:             NewUserID(),
		Email:          email,
		Username:       username,
		HashedPassword: hashedPassword,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// UpdateEmail replaces the user's email address. The Email value object is
// already validated, so this cannot fail.
func (u *User) UpdateEmail(email Email) {
	u.Email = email
	u.touch()
}

// UpdateUsername replaces the username after trimming. An empty result is a
// validation error and leaves the user unchanged.
func (u *User) UpdateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return serrors.With(serrors.ErrInvalidArgument, "username cannot be empty")
	}

	u.Username = username
	u.touch()

	return nil
}

// UpdatePassword replaces the stored password hash. An empty hash is a
// validation error and leaves the user unchanged.
func (u *User) UpdatePassword(hashedPassword string) error {
	if hashedPassword == "" {
		return serrors.With(serrors.ErrInvalidArgument, "hashed password cannot be empty")
	}

	u.HashedPassword = hashedPassword
	u.touch()

	return nil
}

// Activate enables the user.
func (u *User) Activate() {
	u.IsActive = true
	u.touch()
}

// Deactivate disables the user, preventing future logins and refreshes.
func (u *User) Deactivate() {
	u.IsActive = false
	u.touch()
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}
