package auth

import (
	"planner/internal/domain/service"
	"planner/internal/errors"
)

// sessionResolver resolves bearer tokens into identities using the token
// service. It holds no mutable state and touches no persistence: one valid
// access token always resolves to the same identity until it expires.
type sessionResolver struct {
	tokenService service.TokenService
}

// NewSessionResolver is the constructor for sessionResolver.
func NewSessionResolver(tokenService service.TokenService) service.SessionResolver {
	return &sessionResolver{tokenService: tokenService}
}

// Resolve decodes and validates a bearer token and produces the minimal
// identity record. Each rejection carries its specific reason for logging;
// the delivery layer collapses them all into one generic response.
func (r *sessionResolver) Resolve(tokenString string) (*service.Identity, error) {
	claims, err := r.tokenService.ValidateToken(tokenString)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSession, err.Error())
	}

	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrapf(service.ErrWrongTokenType, "token type %q cannot authorize a request", claims.Type)
	}

	if claims.Email == "" || claims.UserID == "" {
		return nil, errors.Wrap(service.ErrIncompleteClaims, "token missing identity claims")
	}

	return &service.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
