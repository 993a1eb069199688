package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"planner/config"
	"planner/internal/domain/service"
	"planner/internal/errors"
)

// fallbackAccessTTL is used when no access token lifetime is configured.
const fallbackAccessTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// One symmetric secret signs both token variants; the variants differ only in
// lifetime and the "type" claim.
type jwtService struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, err := signingMethod(cfg.JWT.Algorithm)
	if err != nil {
		return nil, err
	}

	accessTTL := time.Duration(cfg.JWT.AccessTokenExpireMinutes) * time.Minute
	if accessTTL <= 0 {
		accessTTL = fallbackAccessTTL
	}
	refreshTTL := time.Duration(cfg.JWT.RefreshTokenExpireDays) * 24 * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.SecretKey),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// signingMethod resolves the configured algorithm name to an HMAC signing
// method. Asymmetric algorithms are rejected: the system uses one shared secret.
func signingMethod(algorithm string) (jwt.SigningMethod, error) {
	switch algorithm {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, errors.Errorf("unsupported jwt algorithm: %s", algorithm)
	}
}

// GenerateTokenPair creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokenPair(userID, email string) (*service.TokenPair, error) {
	accessToken, err := s.mint(userID, email, service.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint access token")
	}

	refreshToken, err := s.mint(userID, email, service.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint refresh token")
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// ValidateToken verifies the signature and expiry of a token string and
// returns its claims. The expected algorithm is pinned from configuration:
// a token whose header declares any other algorithm (including "none") is
// rejected before signature verification.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, decodeError(err)
	}
	if !token.Valid {
		return nil, service.ErrTokenSignature
	}

	return claims, nil
}

// mint serializes and signs a claims set with the given type and lifetime.
func (s *jwtService) mint(userID, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)

	return token.SignedString(s.secret)
}

// decodeError collapses golang-jwt's error tree into the domain's three
// decode failure kinds.
func decodeError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	default:
		return service.ErrTokenSignature
	}
}
