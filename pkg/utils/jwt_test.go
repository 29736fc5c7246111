package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	v := NewTokenVerifier("test-secret")
	userID := uuid.New()

	token, err := v.CreateToken(userID, "host@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, "host@example.com", claims.Email)
}

func TestValidateTokenRejects(t *testing.T) {
	v := NewTokenVerifier("test-secret")

	expired, err := v.CreateToken(uuid.New(), "", -time.Minute)
	require.NoError(t, err)
	_, err = v.ValidateToken(expired)
	assert.Error(t, err, "expired")

	foreign, err := NewTokenVerifier("other-secret").CreateToken(uuid.New(), "", time.Hour)
	require.NoError(t, err)
	_, err = v.ValidateToken(foreign)
	assert.Error(t, err, "wrong secret")

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = v.ValidateToken(badSubject)
	assert.Error(t, err, "subject")

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = v.ValidateToken(noExpiry)
	assert.Error(t, err, "missing exp")
}
