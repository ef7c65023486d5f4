package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, TypeSession, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeSession, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, TypeSession, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TypeSession, token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, TypeSession, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeSession, token)
	assert.Error(t, err)
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeSession, token)
	assert.EqualError(t, err, "invalid token type")
}
