package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs an HS256 token for userID that AuthMiddleware(cfg) accepts.
// Production tokens come from the identity provider; this is for local
// development and tests.
func IssueToken(cfg AuthConfig, userID string, ttl time.Duration) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("auth secret is empty")
	}
	if userID == "" {
		return "", errors.New("user id is empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
