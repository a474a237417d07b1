package v1handler

import (
	"context"
	"net/http"
	"strings"

	"taskhub/internal/auth"
	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
)

// ctxKey is a private type for context keys defined by this package.
type ctxKey int

// userCtxKey is the context key under which the authenticated user is stored.
const userCtxKey ctxKey = iota

// SecHandler authenticates bearer tokens on protected routes.
type SecHandler struct {
	auth auth.Auth
}

// NewSecHandler creates a security handler backed by the given auth service.
func NewSecHandler(a auth.Auth) *SecHandler {
	return &SecHandler{auth: a}
}

// Wrap returns a middleware that resolves the Authorization bearer token to a
// user and stores it in the request context. Requests without a valid token
// are rejected with 401.
func (s *SecHandler) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error: "Not authenticated",
				Code:  serrors.ErrUnauthenticated.Error(),
			})

			return
		}

		user, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}

// UserFromContext returns the authenticated user stored by the security
// handler, or nil if the request was not authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey).(*domain.User)

	return user
}
