package v1handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taskhub/internal/auth"
	"taskhub/pkg/serrors"
)

func TestSignUp(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)

	env.auth.EXPECT().Register(gomock.Any(), user.Email, "alice", gomock.Any()).
		Return(&auth.Session{
			User: user,
			Tokens: auth.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    1800,
			},
		}, nil)

	rec := env.do(http.MethodPost, "/v1/auth/signup",
		`{"email":"alice@example.com","username":"alice","password":"Secret123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "User registered successfully", body["message"])

	userBody, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", userBody["email"])
	require.Equal(t, "alice", userBody["username"])
	require.Equal(t, true, userBody["is_active"])
	// freshly created users have never been updated
	require.Nil(t, userBody["updated_at"])

	tokens, ok := body["tokens"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "access", tokens["access_token"])
	require.Equal(t, "refresh", tokens["refresh_token"])
	require.Equal(t, "bearer", tokens["token_type"])
	require.EqualValues(t, 1800, tokens["expires_in"])
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing email", body: `{"username":"alice","password":"Secret123"}`},
		{name: "short username", body: `{"email":"a@b.com","username":"ab","password":"Secret123"}`},
		{name: "short password", body: `{"email":"a@b.com","username":"alice","password":"Ab1"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(http.MethodPost, "/v1/auth/signup", tc.body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignUp_WeakPassword(t *testing.T) {
	env := newTestEnv(t)

	// long enough for the DTO but missing an uppercase letter
	rec := env.do(http.MethodPost, "/v1/auth/signup",
		`{"email":"alice@example.com","username":"alice","password":"secret123"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, serrors.ErrInvalidArgument.Error(), body["code"])
}

func TestSignUp_Conflict(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "User with this email already exists"))

	rec := env.do(http.MethodPost, "/v1/auth/signup",
		`{"email":"alice@example.com","username":"alice","password":"Secret123"}`, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "User with this email already exists", body["error"])
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)

	env.auth.EXPECT().Login(gomock.Any(), user.Email, gomock.Any()).
		Return(&auth.Session{
			User:   user,
			Tokens: auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 1800},
		}, nil)

	rec := env.do(http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"Secret123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Login successful", body["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnauthenticated, "Invalid email or password"))

	rec := env.do(http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"Wrong1234"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Invalid email or password", body["error"])
}

func TestLogin_MalformedPasswordGetsGenericError(t *testing.T) {
	env := newTestEnv(t)

	// password violates the complexity rules, so no Login call is made, yet
	// the response is indistinguishable from a wrong password
	rec := env.do(http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"weakpassword"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Invalid email or password", body["error"])
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().Refresh(gomock.Any(), "refresh-token").
		Return(auth.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "refresh-token",
			ExpiresIn:    1800,
		}, nil)

	rec := env.do(http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"refresh-token"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "new-access", body["access_token"])
	require.Equal(t, "refresh-token", body["refresh_token"])
	require.Equal(t, "bearer", body["token_type"])
}

func TestRefreshToken_Invalid(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().Refresh(gomock.Any(), "garbage").
		Return(auth.TokenPair{}, serrors.With(serrors.ErrUnauthenticated, "Invalid refresh token"))

	rec := env.do(http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"garbage"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Logout successful. Please discard your tokens.", body["message"])
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	user := newActiveUser(t)

	env.auth.EXPECT().Authenticate(gomock.Any(), "token").Return(user, nil)

	rec := env.do(http.MethodGet, "/v1/auth/me", "", authHeader("token"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, user.ID.String(), body["id"])
	require.Equal(t, "alice", body["username"])
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/v1/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("invalid token", func(t *testing.T) {
		env := newTestEnv(t)

		env.auth.EXPECT().Authenticate(gomock.Any(), "bad").
			Return(nil, serrors.With(serrors.ErrUnauthenticated, "Invalid authentication credentials"))

		rec := env.do(http.MethodGet, "/v1/auth/me", "", authHeader("bad"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
