// Package auth implements the bearer-token codec: it turns an authenticated
// identity into a signed claims token and back. Claims are stateless; nothing
// is stored server-side.
package auth

import (
	"errors"
	"fmt"
	"time"

	"shop-service/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed token or expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload: the identity plus registered expiry.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts verified claims back into a resolved identity.
func (c *Claims) Identity() models.Identity {
	return models.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}

// TokenService issues and verifies identity tokens.
type TokenService interface {
	Issue(identity models.Identity) (string, error)
	Verify(tokenString string) (*Claims, error)
}

// JWTService signs claims with HMAC-SHA256.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a token service with the given signing secret and
// token lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the identity, expiring after the configured
// lifetime.
func (s *JWTService) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
