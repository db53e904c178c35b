package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	require.NoError(t, err)

	parts := strings.Split(hashed, ".")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 128) // 64-byte key, hex encoded
	assert.Len(t, parts[1], 32)  // 16-byte salt, hex encoded
}

func TestComparePasswords(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, ComparePasswords("hunter2", hashed))
	assert.False(t, ComparePasswords("hunter3", hashed))
	assert.False(t, ComparePasswords("hunter2", "not-a-hash"))
	assert.False(t, ComparePasswords("hunter2", ""))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("hunter2")
	require.NoError(t, err)
	b, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, ComparePasswords("hunter2", a))
	assert.True(t, ComparePasswords("hunter2", b))
}
