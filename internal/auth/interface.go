package auth

import (
	"context"

	"taskhub/pkg/domain"
)

// Session is the result of a successful registration or login: the user entity
// together with a freshly issued token pair.
type Session struct {
	// User is the authenticated user.
	User *domain.User
	// Tokens is the access/refresh token pair issued for the session.
	Tokens TokenPair
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Auth interface {
	Register(ctx context.Context, email domain.Email, username string, password domain.Password) (*Session, error)
	Login(ctx context.Context, email domain.Email, password domain.Password) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
	CurrentUser(ctx context.Context, userID domain.UserID) (*domain.User, error)
}
