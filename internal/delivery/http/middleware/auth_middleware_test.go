package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/service"
	"planner/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (service.TokenService, service.SessionResolver) {
	t.Helper()

	cfg := &config.Config{
		JWT: &config.JWTConfig{
			SecretKey:                "test-secret-key-for-middleware",
			Algorithm:                "HS256",
			AccessTokenExpireMinutes: 30,
			RefreshTokenExpireDays:   7,
		},
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService, auth.NewSessionResolver(tokenService)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runAuthenticated sends a request through the middleware with the error
// middleware installed, the way the real server is wired.
func runAuthenticated(t *testing.T, resolver service.SessionResolver, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	m := NewAuthMiddleware(resolver, newDiscardLogger())
	e.GET("/protected", func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)

		return c.JSON(http.StatusOK, map[string]string{"userID": identity.UserID})
	}, m.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokenService, resolver := newTestResolver(t)
	pair, err := tokenService.GenerateTokenPair("user-42", "alice@example.com")
	require.NoError(t, err)

	rec := runAuthenticated(t, resolver, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-42")
}

func TestAuthMiddleware_UniformRejection(t *testing.T) {
	t.Parallel()

	tokenService, resolver := newTestResolver(t)
	pair, err := tokenService.GenerateTokenPair("user-42", "alice@example.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"refresh token on access route", "Bearer " + pair.RefreshToken},
	}

	var firstBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runAuthenticated(t, resolver, tc.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.Contains(t, rec.Body.String(), "Could not validate credentials")

			// Every rejection reads identically; nothing hints at the cause.
			if firstBody == "" {
				firstBody = rec.Body.String()
			} else {
				assert.Equal(t, firstBody, rec.Body.String())
			}
		})
	}
}
