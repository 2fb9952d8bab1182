package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// reservedClaims may never appear in a token payload: the token is signed, not encrypted.
var reservedClaims = []string{"password", "secret", "token"}

// TokenService issues and verifies HS256 access tokens. It holds no mutable
// state beyond the signing key fixed at construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a TokenService. A non-positive ttl falls back to 30 minutes.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of s that reads the time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *s
	clone.now = now
	return &clone
}

// Issue signs identity together with iat and exp claims. The identity must
// carry a numeric "id" and must not carry any reserved key.
func (s *TokenService) Issue(identity map[string]any) (string, error) {
	if identity == nil {
		return "", fmt.Errorf("%w: payload must be a mapping", domain.ErrInvalidTokenPayload)
	}
	raw, ok := identity["id"]
	if !ok {
		return "", fmt.Errorf("%w: payload must include user id", domain.ErrInvalidTokenPayload)
	}
	idOnly := domain.Identity{"id": raw}
	if _, ok := idOnly.UserID(); !ok {
		return "", fmt.Errorf("%w: user id must be numeric", domain.ErrInvalidTokenPayload)
	}
	for _, k := range reservedClaims {
		if _, found := identity[k]; found {
			return "", fmt.Errorf("%w: sensitive field %q must not be included", domain.ErrInvalidTokenPayload, k)
		}
	}

	now := s.now().UTC()
	claims := make(jwt.MapClaims, len(identity)+2)
	for k, v := range identity {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// IssueFor issues a token carrying the user's id and role.
func (s *TokenService) IssueFor(user *domain.User) (string, error) {
	return s.Issue(map[string]any{
		"id":   user.ID,
		"role": string(user.Role),
	})
}

// Verify checks the signature, algorithm and expiry of token and returns its
// payload. Expiry errors wrap domain.ErrTokenExpired; everything else wraps
// domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	identity := domain.Identity(claims)
	if _, ok := identity.UserID(); !ok {
		return nil, fmt.Errorf("%w: token missing user id", domain.ErrTokenInvalid)
	}
	return identity, nil
}
