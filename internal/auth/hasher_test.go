package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskhub/internal/auth"
	"taskhub/pkg/domain"
)

func mustPassword(t *testing.T, plain string) domain.Password {
	t.Helper()

	password, err := domain.NewPassword(plain)
	require.NoError(t, err)

	return password
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	password := mustPassword(t, "Secret123")

	hash1, err := hasher.Hash(password)
	require.NoError(t, err)
	hash2, err := hasher.Hash(password)
	require.NoError(t, err)

	// salted: same password, different hashes
	require.NotEqual(t, hash1, hash2)
	require.NotEqual(t, "Secret123", hash1)

	require.True(t, hasher.Verify(password, hash1))
	require.True(t, hasher.Verify(password, hash2))
	require.False(t, hasher.Verify(mustPassword(t, "Wrong1234"), hash1))
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	require.False(t, hasher.Verify(mustPassword(t, "Secret123"), "not-a-bcrypt-hash"))
	require.False(t, hasher.Verify(mustPassword(t, "Secret123"), ""))
}

func TestBcryptHasher_NeedsUpdate(t *testing.T) {
	t.Parallel()

	weak := auth.NewBcryptHasher(bcrypt.MinCost)
	hash, err := weak.Hash(mustPassword(t, "Secret123"))
	require.NoError(t, err)

	require.False(t, weak.NeedsUpdate(hash))
	require.True(t, auth.NewBcryptHasher(bcrypt.MinCost+1).NeedsUpdate(hash))
	require.False(t, weak.NeedsUpdate("not-a-bcrypt-hash"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(100)
	hash, err := hasher.Hash(mustPassword(t, "Secret123"))
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}
