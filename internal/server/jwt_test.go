package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurier/doccheck/internal/config"
)

func newJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newJWTService("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = newJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptyToken(t *testing.T) {
	_, err := newJWTService("test-secret").ValidateToken("")
	assert.ErrorContains(t, err, "empty")
}

func TestJWTService_GarbageToken(t *testing.T) {
	_, err := newJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := newJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}
