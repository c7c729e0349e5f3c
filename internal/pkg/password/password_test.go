//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	t.Run("hash verifies against the plaintext", func(t *testing.T) {
		hashed, err := h.Hash("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", hashed)

		assert.NoError(t, ComparePassword(hashed, "secret1"))
		assert.ErrorIs(t, ComparePassword(hashed, "secret2"), ErrComparisonFailed)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, ErrInvalidPassword)
		assert.ErrorIs(t, ComparePassword("", "x"), ErrInvalidPassword)
	})

	t.Run("default cost", func(t *testing.T) {
		assert.Equal(t, DefaultCost, NewBcryptHasher().cost)
	})
}
