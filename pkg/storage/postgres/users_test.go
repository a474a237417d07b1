package postgres_test

import (
	"context"
	"testing"

	"taskhub/pkg/domain"
	"taskhub/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	email, err := domain.NewEmail("store@example.com")
	require.NoError(t, err)
	user, err := domain.NewUser(email, "store-user", "$2a$10$hash")
	require.NoError(t, err)

	stored, err := pgSQL.StoreUser(ctx, *user)
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.Equal(t, user.Email, stored.Email)
	require.Equal(t, "store-user", stored.Username)
	require.True(t, stored.IsActive)
	require.False(t, stored.CreatedAt.IsZero())
	require.True(t, stored.UpdatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := domain.NewUser(email, "other-user", "$2a$10$hash")
		require.NoError(t, err)

		_, err = pgSQL.StoreUser(ctx, *dup)
		require.ErrorIs(t, err, storage.ErrEmailExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		otherEmail, err := domain.NewEmail("other@example.com")
		require.NoError(t, err)
		dup, err := domain.NewUser(otherEmail, "store-user", "$2a$10$hash")
		require.NoError(t, err)

		_, err = pgSQL.StoreUser(ctx, *dup)
		require.ErrorIs(t, err, storage.ErrUsernameExists)
	})
}

func TestPgSQL_UserLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, pgSQL)

	byID, err := pgSQL.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, user.ID, byID.ID)

	byEmail, err := pgSQL.UserByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, user.ID, byEmail.ID)

	byUsername, err := pgSQL.UserByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	require.Equal(t, user.ID, byUsername.ID)

	// absent rows come back as nil, not as an error
	missing, err := pgSQL.UserByID(ctx, domain.NewUserID())
	require.NoError(t, err)
	require.Nil(t, missing)

	missingEmail, err := domain.NewEmail("missing@example.com")
	require.NoError(t, err)
	byEmail, err = pgSQL.UserByEmail(ctx, missingEmail)
	require.NoError(t, err)
	require.Nil(t, byEmail)
}

func TestPgSQL_EmailAndUsernameTaken(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, pgSQL)

	taken, err := pgSQL.EmailTaken(ctx, user.Email)
	require.NoError(t, err)
	require.True(t, taken)

	freeEmail, err := domain.NewEmail("free@example.com")
	require.NoError(t, err)
	taken, err = pgSQL.EmailTaken(ctx, freeEmail)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = pgSQL.UsernameTaken(ctx, user.Username)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = pgSQL.UsernameTaken(ctx, "free-username")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestPgSQL_UpdateUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, pgSQL)

	require.NoError(t, user.UpdateUsername("renamed-"+user.Username))
	user.Deactivate()

	updated, err := pgSQL.UpdateUser(ctx, *user)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, user.Username, updated.Username)
	require.False(t, updated.IsActive)
	require.False(t, updated.UpdatedAt.IsZero())

	// updating a missing user returns nil
	email, err := domain.NewEmail("ghost@example.com")
	require.NoError(t, err)
	ghost, err := domain.NewUser(email, "ghost", "$2a$10$hash")
	require.NoError(t, err)
	updated, err = pgSQL.UpdateUser(ctx, *ghost)
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestPgSQL_DeleteUser_CascadesTasks(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, pgSQL)
	task, err := domain.NewTask(user.ID, "orphan me", "")
	require.NoError(t, err)
	stored, err := pgSQL.StoreTask(ctx, *task)
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// user's tasks go with the user
	got, err := pgSQL.TaskByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again reports nothing removed
	deleted, err = pgSQL.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	for range 3 {
		storeTestUser(t, pgSQL)
	}

	users, err := pgSQL.Users(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)

	rest, err := pgSQL.Users(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
}
