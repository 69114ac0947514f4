package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	auth, err := NewAuthService("admin", "admin123", "test-secret", 3600)
	require.NoError(t, err)
	return auth
}

func TestLoginWithValidCredentials(t *testing.T) {
	auth := newTestAuthService(t)

	token, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "pharmacy-admin", claims.Issuer)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.Login("admin", "wrong")
	assert.Error(t, err)

	_, err = auth.Login("someone", "admin123")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	auth := newTestAuthService(t)
	other, err := NewAuthService("admin", "admin123", "other-secret", 3600)
	require.NoError(t, err)

	token, err := other.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestLogoutRevokesToken(t *testing.T) {
	auth := newTestAuthService(t)

	token, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	require.NoError(t, err)

	auth.Logout(token)
	assert.True(t, auth.IsTokenBlacklisted(token))

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	auth, err := NewAuthService("admin", "admin123", "test-secret", -60)
	require.NoError(t, err)

	token, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}
