package notes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksolovey/notes-api/internal/model"
)

func TestMemoryRepositoryUsers(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	exists, err := repo.NameExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.CreateUser(ctx, model.User{ID: "u1", Name: "alice", CreatedAt: time.Now()})
	require.NoError(t, err)

	err = repo.CreateUser(ctx, model.User{ID: "u2", Name: "alice"})
	assert.ErrorIs(t, err, model.ErrNameTaken)

	exists, err = repo.NameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestMemoryRepositoryNotesKeepInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, model.User{ID: "u1", Name: "alice"}))
	require.NoError(t, repo.CreateNote(ctx, "u1", model.Note{ID: "n1", Title: "first"}))
	require.NoError(t, repo.CreateNote(ctx, "u1", model.Note{ID: "n2", Title: "second"}))

	notes, err := repo.ListNotes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, model.NoteID("n1"), notes[0].ID)
	assert.Equal(t, model.NoteID("n2"), notes[1].ID)

	user, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, user.Notes, 2)
}

func TestMemoryRepositoryScopedLookups(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, model.User{ID: "u1", Name: "alice"}))
	require.NoError(t, repo.CreateUser(ctx, model.User{ID: "u2", Name: "bob"}))
	require.NoError(t, repo.CreateNote(ctx, "u1", model.Note{ID: "n1", Title: "Secret"}))

	_, err := repo.GetNote(ctx, "n1", "u2")
	assert.ErrorIs(t, err, model.ErrNoteNotFound)

	_, err = repo.SearchNoteByTitle(ctx, "u2", "secret")
	assert.ErrorIs(t, err, model.ErrNoteNotFound)

	err = repo.UpdateNote(ctx, "u2", model.Note{ID: "n1", Title: "stolen"})
	assert.ErrorIs(t, err, model.ErrNoteNotFound)

	// Delete is scoped too; the foreign note stays.
	require.NoError(t, repo.DeleteNote(ctx, "n1", "u2"))
	note, err := repo.GetNote(ctx, "n1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Secret", note.Title)
}
