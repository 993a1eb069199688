package service

import "errors"

// Session rejection reasons. Logged internally; clients only ever see a
// single generic "could not validate credentials" response.
var (
	// ErrInvalidSession is returned when the token fails to decode for any
	// reason (signature, expiry, malformed).
	ErrInvalidSession = errors.New("invalid session token")

	// ErrWrongTokenType is returned when a decodable token is not an access
	// token. Refresh tokens never authorize a request directly.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrIncompleteClaims is returned when required identity claims are absent.
	ErrIncompleteClaims = errors.New("incomplete token claims")
)

// Identity is the minimal record resolved from a valid access token.
// It is request-scoped and never persisted.
type Identity struct {
	UserID string
	Email  string
}

// SessionResolver turns a presented bearer token into an Identity or a
// structured rejection. Resolution is a pure function of the token: a valid
// access token always resolves to the same Identity until it expires.
type SessionResolver interface {
	Resolve(tokenString string) (*Identity, error)
}
