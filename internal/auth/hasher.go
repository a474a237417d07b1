package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"taskhub/pkg/domain"
)

// PasswordHasher abstracts one-way password hashing so the workflow layer does
// not depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash derives a salted hash from the given password. Two calls with the
	// same password produce different hashes.
	Hash(password domain.Password) (string, error)
	// Verify reports whether the plaintext password matches the stored hash.
	Verify(password domain.Password, hash string) bool
	// NeedsUpdate reports whether the stored hash was produced with weaker
	// parameters than currently configured and should be re-hashed.
	NeedsUpdate(hash string) bool
}

// BcryptHasher implements PasswordHasher using the bcrypt algorithm.
type BcryptHasher struct {
	// cost is the bcrypt work factor used for new hashes.
	cost int
}

// NewBcryptHasher creates a bcrypt hasher with the given cost factor. Costs
// outside the range supported by bcrypt fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the given password.
func (h *BcryptHasher) Hash(password domain.Password) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password.Value()), h.cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored bcrypt
// hash. Malformed hashes simply yield false.
func (h *BcryptHasher) Verify(password domain.Password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password.Value())) == nil
}

// NeedsUpdate reports whether the stored hash was produced with a lower cost
// than currently configured.
func (h *BcryptHasher) NeedsUpdate(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false
	}

	return cost < h.cost
}
