package model

import "time"

const (
	TitleMaxLen = 50
	TextMaxLen  = 300
)

type (
	UserID string
	NoteID string

	// Identity is the verified caller resolved from a bearer token.
	Identity struct {
		UserID UserID
		Name   string
	}

	User struct {
		ID           UserID
		Name         string
		PasswordHash string
		CreatedAt    time.Time
		Notes        []Note
	}

	Note struct {
		ID         NoteID
		Title      string
		Text       string
		CreatedAt  time.Time
		ModifiedAt time.Time
	}
)
