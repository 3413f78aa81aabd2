package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
	assert.False(t, CheckPassword("s3cret-pass", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate("user-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenManager("secret").Parse("not.a.token")
	assert.Error(t, err)
}
