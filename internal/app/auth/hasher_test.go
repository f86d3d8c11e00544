package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash is not the plaintext", func(t *testing.T) {
		hash, err := hasher.Hash("hunter2")
		require.NoError(t, err)
		assert.NotEqual(t, "hunter2", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
	})

	t.Run("round trip verifies", func(t *testing.T) {
		for _, pw := range []string{"hunter2", "пароль123", "12345", "a b c d e"} {
			hash, err := hasher.Hash(pw)
			require.NoError(t, err)
			assert.True(t, hasher.Verify(pw, hash), pw)
		}
	})

	t.Run("same password produces different hashes (salt)", func(t *testing.T) {
		h1, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		h2, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := hasher.Hash("hunter2")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("hunter3", hash))
	})

	t.Run("malformed hash never matches", func(t *testing.T) {
		assert.False(t, hasher.Verify("hunter2", "not-a-hash"))
		assert.False(t, hasher.Verify("", ""))
	})

	t.Run("passwords longer than 72 bytes", func(t *testing.T) {
		long := strings.Repeat("a", 100)
		hash, err := hasher.Hash(long)
		require.NoError(t, err)
		assert.True(t, hasher.Verify(long, hash))

		// differs only after byte 72
		assert.False(t, hasher.Verify(strings.Repeat("a", 99)+"b", hash))

		accented := strings.Repeat("é", 40)
		hash, err = hasher.Hash(accented)
		require.NoError(t, err)
		assert.True(t, hasher.Verify(accented, hash))
	})
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
