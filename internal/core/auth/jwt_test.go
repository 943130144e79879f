package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := &TokenClaims{
		UserID: "11111111-2222-3333-4444-555555555555",
		Email:  "owner@tienda.mx",
		Role:   "owner",
	}

	token, expiresIn, err := svc.GenerateAccessToken(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(15*60), expiresIn)

	parsed, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a")
	other := NewJWTService("secret-b")

	token, _, err := svc.GenerateAccessToken(&TokenClaims{UserID: "u1"})
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, expiresAt, err := svc.GenerateRefreshToken("user-42")
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, _, err := svc.GenerateAccessToken(&TokenClaims{UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.ErrorContains(t, err, "not a refresh token")
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.NoError(t, VerifyPassword(hash, "hunter22"))
	assert.Error(t, VerifyPassword(hash, "hunter23"))
}
