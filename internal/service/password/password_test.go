package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsSaltedAndVerifiable(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Salted digests differ but both verify independently.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("pw123", first))
	assert.True(t, hasher.Verify("pw123", second))
}

func TestVerifyMismatch(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("wrong", digest))
	assert.False(t, hasher.Verify("pw123", "not-a-digest"))
	assert.False(t, hasher.Verify("pw123", ""))
}
