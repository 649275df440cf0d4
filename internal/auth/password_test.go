package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"TAREAS_BACK-END/internal/common"
)

func newHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestHashCompare(t *testing.T) {
	h := newHasher(t)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, h.Compare(hash, "s3cret!"))
	assert.False(t, h.Compare(hash, "wrong"))
}

func TestHash_TooLong(t *testing.T) {
	h := newHasher(t)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
}

func TestCompare_MalformedHash(t *testing.T) {
	assert.False(t, newHasher(t).Compare("not-a-bcrypt-hash", "x"))
}

func TestCompareDummy_NeverMatches(t *testing.T) {
	h := newHasher(t)
	assert.False(t, h.CompareDummy("tareas-dummy-password"))
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MaxCost + 1)
	require.Error(t, err)
}
