package auth

import (
	"testing"
	"time"

	"planner/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (service.SessionResolver, *jwtService) {
	t.Helper()

	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	svc, ok := tokenService.(*jwtService)
	require.True(t, ok)

	return NewSessionResolver(tokenService), svc
}

func TestSessionResolver_ValidAccessToken(t *testing.T) {
	resolver, svc := newTestResolver(t)

	token, err := svc.mint("64f1c0ffee00000000000001", "alice@example.com", service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	identity, err := resolver.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee00000000000001", identity.UserID)
	assert.Equal(t, "alice@example.com", identity.Email)

	// Resolution is a pure function of the token.
	again, err := resolver.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, identity, again)
}

func TestSessionResolver_RejectsRefreshToken(t *testing.T) {
	resolver, svc := newTestResolver(t)

	// The token decodes fine; only its type disqualifies it.
	token, err := svc.mint("64f1c0ffee00000000000001", "alice@example.com", service.TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	identity, err := resolver.Resolve(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, service.ErrWrongTokenType)
}

func TestSessionResolver_RejectsExpiredToken(t *testing.T) {
	resolver, svc := newTestResolver(t)

	token, err := svc.mint("64f1c0ffee00000000000001", "alice@example.com", service.TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	identity, err := resolver.Resolve(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestSessionResolver_RejectsGarbage(t *testing.T) {
	resolver, _ := newTestResolver(t)

	identity, err := resolver.Resolve("garbage")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestSessionResolver_RejectsIncompleteClaims(t *testing.T) {
	resolver, svc := newTestResolver(t)

	missingEmail, err := svc.mint("64f1c0ffee00000000000001", "", service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)
	missingID, err := svc.mint("", "alice@example.com", service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	for _, token := range []string{missingEmail, missingID} {
		identity, err := resolver.Resolve(token)
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, service.ErrIncompleteClaims)
	}
}
