package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/blog-system/internal/core/domain"
)

// SessionClaims is the single claims schema used on every route.
type SessionClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec signs session claims into an opaque bearer string and
// verifies them back. Tokens always carry issued-at and expiry; a token
// without an expiry claim fails verification.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the token lifetime, used to bound the session cookie.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Sign produces a signed token for the given user.
func (c *TokenCodec) Sign(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify decodes the token and checks signature and expiry. Any failure,
// including an absent or malformed token, yields domain.ErrInvalidToken:
// claims are never returned partially decoded.
func (c *TokenCodec) Verify(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
