package notes

import (
	"context"

	"github.com/ksolovey/notes-api/internal/model"
)

type (
	// Service performs note operations scoped to the owning account. The
	// caller identity comes from the verified token, never from the request
	// body.
	Service interface {
		List(ctx context.Context, userID model.UserID) ([]model.Note, error)
		Create(ctx context.Context, userID model.UserID, title, text string) (*model.User, error)
		Update(ctx context.Context, userID model.UserID, noteID model.NoteID, title, text string) (*model.Note, error)
		Delete(ctx context.Context, userID model.UserID, noteID model.NoteID) (*model.Note, error)
		SearchByTitle(ctx context.Context, userID model.UserID, title string) (*model.Note, error)
	}
)
