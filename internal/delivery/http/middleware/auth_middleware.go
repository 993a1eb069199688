// Package middleware contains HTTP-specific middlewares.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes behind a valid access token. Every rejection
// produces the same generic 401 so callers cannot probe why a token failed;
// the specific reason only goes to the log.
type AuthMiddleware struct {
	resolver service.SessionResolver
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(resolver service.SessionResolver, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver, logger: logger}
}

// Authenticate validates the bearer token and stores the resolved identity
// on the request context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c, "authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c, "authorization header is not a bearer token")
		}

		identity, err := m.resolver.Resolve(tokenString)
		if err != nil {
			return m.reject(c, err.Error())
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// reject logs the real reason and returns the uniform credentials error.
func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Warn("Rejected unauthenticated request",
		slog.String("path", c.Request().URL.Path),
		slog.String("reason", reason),
	)

	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return domainerrors.ErrCouldNotValidateCredentials
}
