package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpsite-backend/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := model.User{ID: uuid.New(), Role: model.RoleHR}

	token, issued, err := svc.GenerateStandardToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.ValidatedToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, model.RoleHR, claims.Role)
	assert.Equal(t, JwtIssuer, claims.Issuer)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestValidatedToken_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token, _, err := svc.GenerateTokenWithDuration(model.User{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidatedToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidatedToken_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("secret", time.Hour).GenerateStandardToken(model.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = NewTokenService("other", time.Hour).ValidatedToken(token)
	assert.Error(t, err)
}

func TestValidatedToken_WrongIssuer(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).ValidatedToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidatedToken_RejectsNoneAlg(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: JwtIssuer}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).ValidatedToken(token)
	assert.Error(t, err)
}
