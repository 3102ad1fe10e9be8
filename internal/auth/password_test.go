package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}

func TestGenerateTempPassword(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 16; i++ {
		password, err := GenerateTempPassword()
		require.NoError(t, err)

		assert.Len(t, password, tempPasswordLength)
		for _, r := range password {
			assert.True(t, strings.ContainsRune(tempPasswordAlphabet, r), "unexpected character %q", r)
		}

		seen[password] = true
	}

	assert.Greater(t, len(seen), 1, "passwords should not repeat every time")
}
