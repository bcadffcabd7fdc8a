package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("session-123", "test-secret", time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("session-123", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("session-123", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "test-secret")
	assert.Error(t, err)
}
