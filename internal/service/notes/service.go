package notes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ksolovey/notes-api/internal/model"
	"github.com/ksolovey/notes-api/internal/repository/notes"
)

type DefaultService struct {
	repo notes.Repository
}

func NewDefaultService(repo notes.Repository) *DefaultService {
	return &DefaultService{repo: repo}
}

func (d *DefaultService) List(ctx context.Context, userID model.UserID) ([]model.Note, error) {
	user, err := d.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Notes, nil
}

// Create stores a new note linked to the caller and returns the updated
// account view.
func (d *DefaultService) Create(ctx context.Context, userID model.UserID, title, text string) (*model.User, error) {
	now := time.Now()
	note := model.Note{
		ID:         model.NoteID(uuid.NewString()),
		Title:      title,
		Text:       text,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := d.repo.CreateNote(ctx, userID, note); err != nil {
		return nil, err
	}

	return d.repo.GetUser(ctx, userID)
}

// Update looks the note up within the caller's own collection only, so a
// foreign identifier and a missing one fail the same way. An empty title or
// text leaves that field unchanged; the modified timestamp is always set.
func (d *DefaultService) Update(ctx context.Context, userID model.UserID, noteID model.NoteID, title, text string) (*model.Note, error) {
	note, err := d.repo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		note.Title = title
	}
	if text != "" {
		note.Text = text
	}
	note.ModifiedAt = time.Now()

	if err = d.repo.UpdateNote(ctx, userID, *note); err != nil {
		return nil, err
	}

	return note, nil
}

// Delete verifies caller ownership before detaching the note: the lookup is
// scoped to the caller's collection, so a note owned by another account is
// reported as not found rather than located globally.
func (d *DefaultService) Delete(ctx context.Context, userID model.UserID, noteID model.NoteID) (*model.Note, error) {
	note, err := d.repo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if err = d.repo.DeleteNote(ctx, noteID, userID); err != nil {
		return nil, err
	}

	return note, nil
}

// SearchByTitle finds the caller's note whose title matches exactly,
// case-insensitively.
func (d *DefaultService) SearchByTitle(ctx context.Context, userID model.UserID, title string) (*model.Note, error) {
	return d.repo.SearchNoteByTitle(ctx, userID, title)
}
