package server

import (
	"time"

	"github.com/ksolovey/notes-api/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the external account view. It never carries password
// material.
type userResponse struct {
	Name      string         `json:"name"`
	UserID    string         `json:"userId"`
	DateAdded time.Time      `json:"dateAdded"`
	Notes     []noteResponse `json:"notes"`
}

type noteResponse struct {
	NoteID     string    `json:"noteId"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

func toUserResponse(user *model.User) userResponse {
	return userResponse{
		Name:      user.Name,
		UserID:    string(user.ID),
		DateAdded: user.CreatedAt,
		Notes:     toNoteResponses(user.Notes),
	}
}

func toNoteResponses(notes []model.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, toNoteResponse(note))
	}
	return out
}

func toNoteResponse(note model.Note) noteResponse {
	return noteResponse{
		NoteID:     string(note.ID),
		Title:      note.Title,
		Text:       note.Text,
		CreatedAt:  note.CreatedAt,
		ModifiedAt: note.ModifiedAt,
	}
}
