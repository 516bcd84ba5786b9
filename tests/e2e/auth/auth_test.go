//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"portaria/internal/domain/user"
	"portaria/internal/handler/dto/request"
	"portaria/internal/handler/dto/response"
	"portaria/tests/common/authtest"
	"portaria/tests/common/dbtest"
	"portaria/tests/common/httptest"
	"portaria/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		setup          func(t *testing.T)
		email          string
		password       string
		expectedStatus int
	}{
		{
			name: "valid credentials",
			setup: func(t *testing.T) {
				dbtest.CreateTestProfile(t, s.DB, "porteiro@example.com", string(user.RoleGate))
			},
			email:          "porteiro@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown profile",
			setup:          func(*testing.T) {},
			email:          "nobody@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			setup: func(t *testing.T) {
				dbtest.CreateTestProfile(t, s.DB, "sindico@example.com", string(user.RoleApprover))
			},
			email:          "sindico@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "deactivated profile",
			setup: func(t *testing.T) {
				dbtest.CreateTestProfile(t, s.DB, "inativo@example.com", string(user.RoleRequester))
				dbtest.DeactivateProfile(t, s.DB, "inativo@example.com")
			},
			email:          "inativo@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email rejected",
			setup:          func(*testing.T) {},
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password rejected",
			setup:          func(*testing.T) {},
			email:          "porteiro@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			tt.setup(t)

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *AuthSuite) TestRefresh() {
	s.Run("valid refresh cookie issues a new access token", func() {
		t := s.T()
		dbtest.CreateTestProfile(t, s.DB, "refresh@example.com", string(user.RoleRequester))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "refresh@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/auth/refresh",
			nil, []*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshRes response.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &refreshRes))
		require.NotEmpty(t, refreshRes.AccessToken)
	})

	s.Run("missing refresh cookie is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/refresh", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("returns the authenticated profile", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", string(user.RoleApprover))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "me@example.com", me.Email)
		require.Equal(t, string(user.RoleApprover), me.Role)
	})

	s.Run("rejects requests without a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("clears auth cookies", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "logout@example.com", string(user.RoleRequester))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.Equal(t, -1, accessCookie.MaxAge)
	})
}
