package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
)

// TokenType discriminates access tokens from refresh tokens. A token of one
// type is never accepted where the other is expected.
type TokenType string

const (
	// TokenTypeAccess is a short-lived token granting access to protected
	// endpoints.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is a long-lived token exchangeable for new access
	// tokens.
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the JWT payload carried by issued tokens. The subject holds the
// user ID; username is only embedded in access tokens.
type Claims struct {
	// Username is the user's display name, present on access tokens only.
	Username string `json:"username,omitempty"`
	// TokenType marks the token as an access or refresh token.
	TokenType TokenType `json:"type"`

	jwt.RegisteredClaims
}

// TokenPair bundles the access and refresh tokens issued together for a user.
type TokenPair struct {
	// AccessToken is the signed short-lived token.
	AccessToken string
	// RefreshToken is the signed long-lived token.
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
}

// TokenIssuer abstracts issuing and verifying signed tokens.
type TokenIssuer interface {
	// IssuePair issues a fresh access/refresh token pair for the given user.
	IssuePair(userID domain.UserID, username string) (TokenPair, error)
	// IssueAccess issues a fresh access token for the given user without
	// touching the refresh token.
	IssueAccess(userID domain.UserID, username string) (string, error)
	// Verify validates the token signature, expiry and type, and returns its
	// claims. All failure modes yield the same unauthenticated error.
	Verify(token string, expected TokenType) (*Claims, error)
	// AccessTTL returns the configured access token lifetime.
	AccessTTL() time.Duration
}

// JWTIssuer implements TokenIssuer using HMAC-SHA256 signed JWTs.
type JWTIssuer struct {
	// secret is the HMAC signing key.
	secret []byte
	// accessTTL is the lifetime of issued access tokens.
	accessTTL time.Duration
	// refreshTTL is the lifetime of issued refresh tokens.
	refreshTTL time.Duration
}

// NewJWTIssuer creates a token issuer signing with the given secret and token
// lifetimes.
func NewJWTIssuer(secret string, accessTTL, refreshTTL time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL returns the configured access token lifetime.
func (i *JWTIssuer) AccessTTL() time.Duration { return i.accessTTL }

// IssuePair issues a fresh access/refresh token pair for the given user.
func (i *JWTIssuer) IssuePair(userID domain.UserID, username string) (TokenPair, error) {
	access, err := i.IssueAccess(userID, username)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.sign(Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.refreshTTL)),
		},
	})
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(i.accessTTL.Seconds()),
	}, nil
}

// IssueAccess issues a fresh access token carrying the user's ID and username.
func (i *JWTIssuer) IssueAccess(userID domain.UserID, username string) (string, error) {
	return i.sign(Claims{
		Username:  username,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.accessTTL)),
		},
	})
}

// Verify validates the token and returns its claims. Malformed tokens, bad
// signatures, expired tokens and type mismatches are indistinguishable to the
// caller.
func (i *JWTIssuer) Verify(token string, expected TokenType) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthenticated, err, "invalid or expired token")
	}

	if claims.TokenType != expected {
		return nil, serrors.With(serrors.ErrUnauthenticated, "invalid or expired token")
	}

	return &claims, nil
}

func (i *JWTIssuer) sign(claims Claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return token, nil
}
