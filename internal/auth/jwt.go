// Package auth issues and validates admin session tokens and serves the login endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"corpsite-backend/internal/model"
)

// JwtIssuer is the issuer claim of every token this server signs
const JwtIssuer = "corpsite-backend"

// Claims is the payload of an access token
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and validates HS256 access tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService; ttl is the lifetime of issued tokens
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime of issued tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// GenerateStandardToken issues a token for user with the default lifetime
func (s *TokenService) GenerateStandardToken(user model.User) (string, *Claims, error) {
	return s.GenerateTokenWithDuration(user, s.ttl)
}

// GenerateTokenWithDuration issues a token for user that expires after dur
func (s *TokenService) GenerateTokenWithDuration(user model.User, dur time.Duration) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    JwtIssuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(dur)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("Failed to sign token: %w", err)
	}
	return signedToken, claims, nil
}

// ValidatedToken parses encodeToken, checks its signature, expiry and issuer
func (s *TokenService) ValidatedToken(encodeToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(encodeToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("Invalid access token")
	}
	if !claims.VerifyIssuer(JwtIssuer, true) {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	return claims, nil
}
