package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestHashPasswordEmpty(t *testing.T) {
	hash, err := HashPassword("")
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestVerifyPasswordEmptyHash(t *testing.T) {
	// OAuth-only accounts store no hash and can never pass a password
	// check, not even with an empty password.
	assert.False(t, VerifyPassword("", ""))
	assert.False(t, VerifyPassword("anything", ""))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
