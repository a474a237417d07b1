package domain_test

import (
	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *domain.User {
	t.Helper()

	email, err := domain.NewEmail("a@b.com")
	require.NoError(t, err)
	user, err := domain.NewUser(email, "u1", "$2a$10$fakehash")
	require.NoError(t, err)

	return user
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)
	require.NotEmpty(t, user.ID.String())
	require.Equal(t, "u1", user.Username)
	require.True(t, user.IsActive)
	require.False(t, user.CreatedAt.IsZero())
	require.True(t, user.UpdatedAt.IsZero(), "a fresh user must not have an update timestamp")

	// ids must be unique per user
	other := newTestUser(t)
	require.NotEqual(t, user.ID, other.ID)
}

func TestNewUser_Invalid(t *testing.T) {
	t.Parallel()

	email, err := domain.NewEmail("a@b.com")
	require.NoError(t, err)

	_, err = domain.NewUser(email, "   ", "hash")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)

	_, err = domain.NewUser(email, "u1", "")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestUser_UpdateUsername(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)

	require.NoError(t, user.UpdateUsername("  renamed  "))
	require.Equal(t, "renamed", user.Username)
	require.False(t, user.UpdatedAt.IsZero())

	// invalid input leaves the entity unchanged
	before := *user
	err := user.UpdateUsername(" ")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.Equal(t, before, *user)
}

func TestUser_UpdateEmail(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)
	newEmail, err := domain.NewEmail("new@b.com")
	require.NoError(t, err)

	user.UpdateEmail(newEmail)
	require.Equal(t, newEmail, user.Email)
	require.False(t, user.UpdatedAt.IsZero())
}

func TestUser_UpdatePassword(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)

	require.NoError(t, user.UpdatePassword("$2a$12$otherhash"))
	require.Equal(t, "$2a$12$otherhash", user.HashedPassword)
	require.False(t, user.UpdatedAt.IsZero())

	before := *user
	err := user.UpdatePassword("")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.Equal(t, before, *user)
}

func TestUser_ActivateDeactivate(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)

	user.Deactivate()
	require.False(t, user.IsActive)
	require.False(t, user.UpdatedAt.IsZero())

	user.Activate()
	require.True(t, user.IsActive)
}
