package server

import (
	"strings"
	"unicode/utf8"

	"github.com/ksolovey/notes-api/internal/model"
)

// ValidationError enumerates every violated field constraint of a request
// shape. Validation runs before any side effect.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, " ")
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r credentialsRequest) validate() *ValidationError {
	var violations []string
	if strings.TrimSpace(r.Name) == "" {
		violations = append(violations, "Name is required.")
	}
	if r.Password == "" {
		violations = append(violations, "Password is required.")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

type createNoteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (r createNoteRequest) validate() *ValidationError {
	var violations []string
	if r.Title == "" {
		violations = append(violations, "Title is required")
	} else if utf8.RuneCountInString(r.Title) > model.TitleMaxLen {
		violations = append(violations, "Title must be at most 50 characters long")
	}
	if r.Text == "" {
		violations = append(violations, "Text is required")
	} else if utf8.RuneCountInString(r.Text) > model.TextMaxLen {
		violations = append(violations, "Text must be at most 300 characters long")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

type updateNoteRequest struct {
	NoteID string `json:"noteId"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

func (r updateNoteRequest) validate() *ValidationError {
	if r.NoteID == "" {
		return &ValidationError{Violations: []string{"noteId is required in the request body."}}
	}
	if r.Title == "" && r.Text == "" {
		return &ValidationError{Violations: []string{"At least one of title or text must be provided."}}
	}

	var violations []string
	if utf8.RuneCountInString(r.Title) > model.TitleMaxLen {
		violations = append(violations, "Title must be at most 50 characters long")
	}
	if utf8.RuneCountInString(r.Text) > model.TextMaxLen {
		violations = append(violations, "Text must be at most 300 characters long")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

type deleteNoteRequest struct {
	NoteID string `json:"noteId"`
}

func (r deleteNoteRequest) validate() *ValidationError {
	if r.NoteID == "" {
		return &ValidationError{Violations: []string{"noteId is required in the request body."}}
	}
	return nil
}
