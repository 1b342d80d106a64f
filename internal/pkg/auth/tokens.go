package auth

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a presented token fails signature or
// claim validation.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 24 * time.Hour

// Claims carries the authenticated identity extracted from a token.
type Claims struct {
	UserID kernel.UUID
	Role   string
}

// TokenService signs and validates the HS256 bearer tokens used by the
// HTTP layer.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret []byte) TokenService {
	return TokenService{secret: secret}
}

// Sign issues a token for the user, valid for 24 hours.
func (t TokenService) Sign(userID kernel.UUID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})

	return token.SignedString(t.secret)
}

// Validate parses and verifies a token, returning the identity claims.
func (t TokenService) Validate(rawToken string) (Claims, error) {
	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	userID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role, ok := mapClaims["role"].(string)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Role: role}, nil
}
