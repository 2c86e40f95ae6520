package notes

import (
	"context"

	"github.com/ksolovey/notes-api/internal/model"
)

type (
	Repository interface {
		NameExists(ctx context.Context, name string) (bool, error)
		CreateUser(ctx context.Context, user model.User) error
		GetUserByName(ctx context.Context, name string) (*model.User, error)
		GetUser(ctx context.Context, userID model.UserID) (*model.User, error)
		CreateNote(ctx context.Context, userID model.UserID, note model.Note) error
		GetNote(ctx context.Context, noteID model.NoteID, userID model.UserID) (*model.Note, error)
		UpdateNote(ctx context.Context, userID model.UserID, note model.Note) error
		DeleteNote(ctx context.Context, noteID model.NoteID, userID model.UserID) error
		ListNotes(ctx context.Context, userID model.UserID) ([]model.Note, error)
		SearchNoteByTitle(ctx context.Context, userID model.UserID, title string) (*model.Note, error)
	}
)
