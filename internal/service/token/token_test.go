package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksolovey/notes-api/internal/model"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	manager := NewDefaultManager("test-secret")

	identity := model.Identity{UserID: "user-1", Name: "alice"}

	signed, err := manager.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	verified, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, identity, verified)
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Now()
	manager := NewDefaultManager("test-secret").WithClock(func() time.Time { return issuedAt })

	signed, err := manager.Issue(model.Identity{UserID: "user-1", Name: "alice"})
	require.NoError(t, err)

	// Still valid just before expiry.
	manager.WithClock(func() time.Time { return issuedAt.Add(TokenTTL - time.Second) })
	_, err = manager.Verify(signed)
	require.NoError(t, err)

	manager.WithClock(func() time.Time { return issuedAt.Add(TokenTTL + time.Second) })
	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyForeignSecret(t *testing.T) {
	signed, err := NewDefaultManager("secret-a").Issue(model.Identity{UserID: "user-1", Name: "alice"})
	require.NoError(t, err)

	_, err = NewDefaultManager("secret-b").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMalformed(t *testing.T) {
	manager := NewDefaultManager("test-secret")

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := manager.Verify(raw)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}
