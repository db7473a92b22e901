package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1", hash)

	assert.True(t, CheckPassword(hash, "Secret1"))
	assert.False(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-hash", "Secret1"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("Secret1")
	require.NoError(t, err)
	h2, err := HashPassword("Secret1")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, h1, h2)
}
