package notes

import (
	"context"
	"strings"
	"sync"

	"github.com/ksolovey/notes-api/internal/model"
)

// MemoryRepository is an in-memory Repository used in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[model.UserID]*model.User
	// notes keeps insertion order per user, mirroring storage order.
	notes map[model.UserID][]model.Note
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[model.UserID]*model.User),
		notes: make(map[model.UserID][]model.Note),
	}
}

func (m *MemoryRepository) NameExists(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepository) CreateUser(_ context.Context, user model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Name == user.Name {
			return model.ErrNameTaken
		}
	}

	stored := user
	m.users[user.ID] = &stored
	return nil
}

func (m *MemoryRepository) GetUserByName(_ context.Context, name string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Name == name {
			found := *user
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (m *MemoryRepository) GetUser(_ context.Context, userID model.UserID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	found := *user
	found.Notes = append([]model.Note(nil), m.notes[userID]...)
	return &found, nil
}

func (m *MemoryRepository) CreateNote(_ context.Context, userID model.UserID, note model.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notes[userID] = append(m.notes[userID], note)
	return nil
}

func (m *MemoryRepository) GetNote(_ context.Context, noteID model.NoteID, userID model.UserID) (*model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, note := range m.notes[userID] {
		if note.ID == noteID {
			found := note
			return &found, nil
		}
	}
	return nil, model.ErrNoteNotFound
}

func (m *MemoryRepository) UpdateNote(_ context.Context, userID model.UserID, note model.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.notes[userID] {
		if existing.ID == note.ID {
			note.CreatedAt = existing.CreatedAt
			m.notes[userID][i] = note
			return nil
		}
	}
	return model.ErrNoteNotFound
}

func (m *MemoryRepository) DeleteNote(_ context.Context, noteID model.NoteID, userID model.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := m.notes[userID]
	for i, note := range owned {
		if note.ID == noteID {
			m.notes[userID] = append(owned[:i:i], owned[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryRepository) ListNotes(_ context.Context, userID model.UserID) ([]model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.Note(nil), m.notes[userID]...), nil
}

func (m *MemoryRepository) SearchNoteByTitle(_ context.Context, userID model.UserID, title string) (*model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, note := range m.notes[userID] {
		if strings.EqualFold(note.Title, title) {
			found := note
			return &found, nil
		}
	}
	return nil, model.ErrNoteNotFound
}
