// Package auth resolves "who is calling". It owns the JWT token format
// and the HTTP middleware that turns a bearer token into a loaded, active
// user on the request context. Password verification is not done here.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/config"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

// TokenManager issues and verifies the bearer tokens the API runs on.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg *config.Config) (*TokenManager, error) {
	if cfg.JWT.Secret == "" {
		return nil, apperrors.InvalidArg("jwt secret is required")
	}
	ttl := time.Duration(cfg.JWT.ExpiredIn) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(cfg.JWT.Secret), ttl: ttl}, nil
}

func (tm *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInternal, "token signing failed", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject user id.
// Every failure collapses to the same unauthenticated error; callers get
// no oracle for why a token was rejected.
func (tm *TokenManager) Verify(raw string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrNotAuthenticated
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.ErrNotAuthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, apperrors.ErrNotAuthenticated
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrNotAuthenticated
	}
	return userID, nil
}
