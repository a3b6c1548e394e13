package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "reader@example.com", []string{"user", "admin"})
	require.NoError(t, err)

	claims, err := ValidateToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenCannotActAsAccessToken(t *testing.T) {
	token, err := GenerateRefreshToken("user-1", "reader@example.com", []string{"user"})
	require.NoError(t, err)

	_, err = ValidateToken(token, TokenTypeAccess)
	require.Error(t, err)

	claims, err := ValidateToken(token, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", TokenTypeAccess)
	require.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	a, err := GenerateAccessToken("user-1", "reader@example.com", nil)
	require.NoError(t, err)
	b, err := GenerateAccessToken("user-1", "reader@example.com", nil)
	require.NoError(t, err)

	claimsA, err := ValidateToken(a, TokenTypeAccess)
	require.NoError(t, err)
	claimsB, err := ValidateToken(b, TokenTypeAccess)
	require.NoError(t, err)
	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
