package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/config"
	"taskhub/pkg/domain"
	"taskhub/pkg/logger"
	"taskhub/pkg/serrors"
	"taskhub/pkg/storage"
)

// dummyPassword is hashed once at construction time and verified against when
// a login targets an unknown or inactive account, so that such logins take
// roughly as long as ones hitting a real hash.
const dummyPassword = "Timing9Defense"

// Options configure token issuing and password hashing. These settings are
// typically derived from application configuration.
type Options struct {
	// JWTSecret is the HMAC key used to sign and verify tokens.
	JWTSecret string
	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration
	// RefreshTokenTTL is the lifetime of issued refresh tokens.
	RefreshTokenTTL time.Duration
	// BcryptCost is the bcrypt work factor used for new password hashes.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		JWTSecret:       cfg.Auth.JWTSecret,
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		BcryptCost:      cfg.Auth.BcryptCost,
	}
}

// auth is the concrete implementation of the Auth interface. It coordinates
// the storage layer, password hashing and token issuing.
type auth struct {
	// storage is the persistence layer used to store and look up users.
	storage storage.Storage
	// hasher hashes and verifies passwords.
	hasher PasswordHasher
	// issuer signs and verifies tokens.
	issuer TokenIssuer
	// dummyHash is a valid hash verified against for unknown accounts.
	dummyHash string
}

// Register creates a new user account and issues a token pair for it. Email
// and username uniqueness is checked up front inside a transaction, and
// constraint violations raced in by concurrent registrations map to the same
// conflict errors.
func (a *auth) Register(ctx context.Context,
	email domain.Email,
	username string,
	password domain.Password) (*Session, error) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := domain.NewUser(email, username, hash)
	if err != nil {
		return nil, err
	}

	var stored *domain.User
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		taken, err := tx.EmailTaken(ctx, email)
		if err != nil {
			return fmt.Errorf("could not check email: %w", err)
		}
		if taken {
			return serrors.With(serrors.ErrConflict, "User with this email already exists")
		}

		taken, err = tx.UsernameTaken(ctx, user.Username)
		if err != nil {
			return fmt.Errorf("could not check username: %w", err)
		}
		if taken {
			return serrors.With(serrors.ErrConflict, "User with this username already exists")
		}

		stored, err = tx.StoreUser(ctx, *user)
		if err != nil {
			return fmt.Errorf("could not store user: %w", err)
		}

		return nil
	}); err != nil {
		switch {
		case errors.Is(err, storage.ErrEmailExists):
			return nil, serrors.With(serrors.ErrConflict, "User with this email already exists")
		case errors.Is(err, storage.ErrUsernameExists):
			return nil, serrors.With(serrors.ErrConflict, "User with this username already exists")
		}

		return nil, err
	}

	tokens, err := a.issuer.IssuePair(stored.ID, stored.Username)
	if err != nil {
		return nil, fmt.Errorf("could not issue tokens: %w", err)
	}

	return &Session{User: stored, Tokens: tokens}, nil
}

// Login verifies the given credentials and issues a token pair. Unknown
// emails, inactive accounts and wrong passwords all yield the same error, and
// unknown accounts still burn a hash verification so response timing does not
// reveal whether the email exists.
func (a *auth) Login(ctx context.Context, email domain.Email, password domain.Password) (*Session, error) {
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	if user == nil || !user.IsActive {
		a.hasher.Verify(password, a.dummyHash)

		return nil, serrors.With(serrors.ErrUnauthenticated, "Invalid email or password")
	}

	if !a.hasher.Verify(password, user.HashedPassword) {
		return nil, serrors.With(serrors.ErrUnauthenticated, "Invalid email or password")
	}

	a.maybeRehash(ctx, user, password)

	tokens, err := a.issuer.IssuePair(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("could not issue tokens: %w", err)
	}

	return &Session{User: user, Tokens: tokens}, nil
}

// maybeRehash upgrades the stored password hash when it was produced with a
// weaker cost than currently configured. Failures only log; the login itself
// already succeeded.
func (a *auth) maybeRehash(ctx context.Context, user *domain.User, password domain.Password) {
	if !a.hasher.NeedsUpdate(user.HashedPassword) {
		return
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		logger.Warn(ctx, "could not rehash password", zap.Error(err))

		return
	}

	if err := user.UpdatePassword(hash); err != nil {
		logger.Warn(ctx, "could not rehash password", zap.Error(err))

		return
	}

	if _, err := a.storage.UpdateUser(ctx, *user); err != nil {
		logger.Warn(ctx, "could not store rehashed password", zap.Error(err))
	}
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself is returned unchanged and stays valid until it expires. All
// failure modes yield the same error.
func (a *auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	invalid := serrors.With(serrors.ErrUnauthenticated, "Invalid refresh token")

	claims, err := a.issuer.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, invalid
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return TokenPair{}, invalid
	}

	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return TokenPair{}, invalid
	}

	access, err := a.issuer.IssueAccess(user.ID, user.Username)
	if err != nil {
		return TokenPair{}, fmt.Errorf("could not issue access token: %w", err)
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(a.issuer.AccessTTL().Seconds()),
	}, nil
}

// Authenticate resolves a bearer access token to its user. Invalid tokens and
// unknown or inactive users yield unauthenticated errors.
func (a *auth) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := a.issuer.Verify(accessToken, TokenTypeAccess)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthenticated, err, "Invalid authentication credentials")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return nil, serrors.With(serrors.ErrUnauthenticated, "Invalid authentication credentials")
	}

	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, serrors.With(serrors.ErrUnauthenticated, "User not found or inactive")
	}

	return user, nil
}

// CurrentUser fetches a user by ID. It returns nil without an error when no
// such user exists.
func (a *auth) CurrentUser(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}

// New creates a new Auth instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) (Auth, error) {
	hasher := NewBcryptHasher(options.BcryptCost)
	issuer := NewJWTIssuer(options.JWTSecret, options.AccessTokenTTL, options.RefreshTokenTTL)

	password, err := domain.NewPassword(dummyPassword)
	if err != nil {
		return nil, err
	}
	dummyHash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash dummy password: %w", err)
	}

	return &auth{
		storage:   storage,
		hasher:    hasher,
		issuer:    issuer,
		dummyHash: dummyHash,
	}, nil
}
