package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	ok, err := h.Compare(hash, "s3cret!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err, "mismatch is not an error")
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	ok, err := NewBcryptHasher(bcrypt.MinCost).Compare("not-a-hash", "x")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
