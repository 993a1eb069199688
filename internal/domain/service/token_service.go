package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token type discriminators carried in the "type" claim. Only an access
// token may authorize a request; a refresh token only mints new access tokens.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Decode failures. These stay internal: callers translate all of them into
// one generic rejection before anything reaches a client.
var (
	// ErrTokenExpired is returned when the "exp" claim has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenSignature is returned when the signature does not verify or the
	// token's header declares an algorithm other than the configured one.
	ErrTokenSignature = errors.New("token signature invalid")

	// ErrTokenMalformed is returned for anything that does not parse as a token.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens handed to a client on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// TokenService defines the interface for minting and decoding signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair mints an access and a refresh token for the user,
	// each carrying an explicit type discriminator and expiry.
	GenerateTokenPair(userID, email string) (*TokenPair, error)

	// ValidateToken verifies signature, algorithm and expiry, and returns the
	// parsed claims. Failures map to ErrTokenExpired, ErrTokenSignature or
	// ErrTokenMalformed.
	ValidateToken(tokenString string) (*Claims, error)
}
