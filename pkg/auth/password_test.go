package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("myNewStrongPassword")
	require.NoError(t, err)

	assert.NotEqual(t, "myNewStrongPassword", hash, "hash must never equal the plaintext")
	assert.True(t, CheckPassword(hash, "myNewStrongPassword"))
	assert.False(t, CheckPassword(hash, "wrongPassword"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("samePassword")
	require.NoError(t, err)
	second, err := HashPassword("samePassword")
	require.NoError(t, err)

	// bcrypt generates a fresh salt per hash
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "samePassword"))
	assert.True(t, CheckPassword(second, "samePassword"))
}
