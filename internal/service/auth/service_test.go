package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksolovey/notes-api/internal/model"
	"github.com/ksolovey/notes-api/internal/repository/notes"
	"github.com/ksolovey/notes-api/internal/service/password"
	"github.com/ksolovey/notes-api/internal/service/token"
)

func newTestService() (*DefaultService, *notes.MemoryRepository, *token.DefaultManager) {
	repo := notes.NewMemoryRepository()
	tokens := token.NewDefaultManager("test-secret")
	return NewDefaultService(repo, password.NewBcryptHasher(), tokens), repo, tokens
}

func TestSignUp(t *testing.T) {
	serv, repo, _ := newTestService()
	ctx := context.Background()

	user, err := serv.SignUp(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.NotEmpty(t, user.ID)

	stored, err := repo.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	// Only a salted digest is persisted, never the plaintext.
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestSignUpTrimsName(t *testing.T) {
	serv, _, _ := newTestService()

	user, err := serv.SignUp(context.Background(), "  alice  ", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestSignUpNameTaken(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := context.Background()

	_, err := serv.SignUp(ctx, "alice", "pw123")
	require.NoError(t, err)

	_, err = serv.SignUp(ctx, "alice", "other")
	assert.ErrorIs(t, err, model.ErrNameTaken)

	// Uniqueness is a case-sensitive exact match.
	_, err = serv.SignUp(ctx, "Alice", "pw123")
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	serv, _, tokens := newTestService()
	ctx := context.Background()

	created, err := serv.SignUp(ctx, "alice", "pw123")
	require.NoError(t, err)

	signed, user, err := serv.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	identity, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, model.Identity{UserID: created.ID, Name: "alice"}, identity)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := context.Background()

	_, err := serv.SignUp(ctx, "alice", "pw123")
	require.NoError(t, err)

	_, _, wrongPassword := serv.Login(ctx, "alice", "nope")
	_, _, unknownName := serv.Login(ctx, "nobody", "pw123")

	assert.ErrorIs(t, wrongPassword, model.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownName, model.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownName)
}
