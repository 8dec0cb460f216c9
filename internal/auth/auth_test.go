package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifier_Empty(t *testing.T) {
	_, err := NewVerifier("", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerify_Plaintext(t *testing.T) {
	v, err := NewVerifier("habitadmin2025", "")
	require.NoError(t, err)

	assert.True(t, v.Verify("habitadmin2025"))
	assert.False(t, v.Verify("wrong"))
	assert.False(t, v.Verify(""))
}

func TestVerify_BcryptHash(t *testing.T) {
	hash, err := HashPassword("habitadmin2025")
	require.NoError(t, err)

	v, err := NewVerifier("", hash)
	require.NoError(t, err)

	assert.True(t, v.Verify("habitadmin2025"))
	assert.False(t, v.Verify("habitadmin2024"))
}

func TestVerify_HashTakesPrecedence(t *testing.T) {
	hash, err := HashPassword("real-password")
	require.NoError(t, err)

	v, err := NewVerifier("other-password", hash)
	require.NoError(t, err)

	assert.True(t, v.Verify("real-password"))
	assert.False(t, v.Verify("other-password"))
}

func TestHashPassword_Distinct(t *testing.T) {
	h1, err := HashPassword("secret")
	require.NoError(t, err)
	h2, err := HashPassword("secret")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, h1, h2)
}
