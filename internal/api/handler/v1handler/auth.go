package v1handler

import (
	"net/http"
	"time"

	"taskhub/internal/auth"
	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
)

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type userResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type sessionResponse struct {
	Message string        `json:"message"`
	User    userResponse  `json:"user"`
	Tokens  tokenResponse `json:"tokens"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func newUserResponse(user *domain.User) userResponse {
	resp := userResponse{
		ID:        user.ID.String(),
		Email:     user.Email.String(),
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
	if !user.UpdatedAt.IsZero() {
		resp.UpdatedAt = &user.UpdatedAt
	}

	return resp
}

func newTokenResponse(tokens auth.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    tokens.ExpiresIn,
	}
}

// SignUp registers a new user account and returns the user together with a
// fresh token pair.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		writeError(w, r, err)

		return
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	session, err := h.deps.Auth.Register(r.Context(), email, req.Username, password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		Message: "User registered successfully",
		User:    newUserResponse(session.User),
		Tokens:  newTokenResponse(session.Tokens),
	})
}

// Login verifies credentials and returns the user with a fresh token pair.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		writeError(w, r, err)

		return
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		// such a password can never match a stored hash; answer exactly like a
		// wrong password so account probing learns nothing
		writeError(w, r, serrors.With(serrors.ErrUnauthenticated, "Invalid email or password"))

		return
	}

	session, err := h.deps.Auth.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Message: "Login successful",
		User:    newUserResponse(session.User),
		Tokens:  newTokenResponse(session.Tokens),
	})
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.deps.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newTokenResponse(tokens))
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards them.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Logout successful. Please discard your tokens.",
	})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	writeJSON(w, http.StatusOK, newUserResponse(user))
}
