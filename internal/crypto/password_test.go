package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	passwords := []string{"secret123", "correct horse battery staple", "p"}
	for _, pw := range passwords {
		digest, err := HashPassword(pw)
		require.NoError(t, err)
		require.NotEmpty(t, digest)
		assert.NotContains(t, digest, pw, "digest must not embed the plaintext")

		assert.True(t, VerifyPassword(pw, digest))
		assert.False(t, VerifyPassword(pw+"x", digest))
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	// Random salt makes two digests of the same password differ.
	assert.NotEqual(t, a, b)
	assert.True(t, VerifyPassword("same-password", a))
	assert.True(t, VerifyPassword("same-password", b))
}

func TestVerifyPassword_GarbageDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("whatever", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("whatever", ""))
}
