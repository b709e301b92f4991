package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 3600, 86400)

	token, err := manager.GenerateAccessToken("user-1", "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenNotAcceptedAsAccess(t *testing.T) {
	manager := NewTokenManager("test-secret", 3600, 86400)

	refresh, err := manager.GenerateRefreshToken("user-1", "freelancer")
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(refresh)
	assert.Error(t, err)

	userID, role, err := manager.VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "freelancer", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", -1, 86400)

	token, err := manager.GenerateAccessToken("user-1", "client")
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", 3600, 86400)
	verifier := NewTokenManager("secret-b", 3600, 86400)

	token, err := issuer.GenerateAccessToken("user-1", "client")
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 3600, 86400)

	hash, err := manager.HashPassword("s3cure-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cure-password", hash)

	assert.NoError(t, manager.ComparePassword(hash, "s3cure-password"))
	assert.Error(t, manager.ComparePassword(hash, "wrong-password"))
}
