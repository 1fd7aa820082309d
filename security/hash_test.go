package security

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := a.VerifyPasswd("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("secret2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdenticalPasswordsHashDifferently(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("same-password")
	require.NoError(t, err)

	h2, err := a.GenerateFromPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyLegacyDigest(t *testing.T) {
	a := New()

	// Rows imported from the previous system store bare SHA-256 hex
	sum := sha256.Sum256([]byte("secret1"))
	legacy := hex.EncodeToString(sum[:])

	ok, err := a.VerifyPasswd("secret1", legacy)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong", legacy)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMalformedHash(t *testing.T) {
	a := New()

	_, err := a.VerifyPasswd("secret1", "$argon2id$not$a$real$hash$at-all$x")
	assert.Error(t, err)
}
