package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ksolovey/notes-api/infrastructure/tracing"
	"github.com/ksolovey/notes-api/internal/model"
)

const uniqueViolation = "23505"

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE name = $1)`
	err := d.db.QueryRowContext(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to get user name '%s' exists: %w", name, err)
	}
	return exists, nil
}

func (d *DefaultRepository) CreateUser(ctx context.Context, user model.User) error {
	query := `INSERT INTO users (user_id, name, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := d.db.ExecContext(ctx, query, user.ID, user.Name, user.PasswordHash, user.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.ErrNameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (d *DefaultRepository) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT user_id, name, password_hash, created_at FROM users WHERE name = $1`
	err := d.db.QueryRowContext(ctx, query, name).Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by name '%s': %w", name, err)
	}
	return user, nil
}

// GetUser returns the user together with the notes linked to it.
func (d *DefaultRepository) GetUser(ctx context.Context, userID model.UserID) (*model.User, error) {
	user := &model.User{}
	query := `SELECT user_id, name, password_hash, created_at FROM users WHERE user_id = $1`
	err := d.db.QueryRowContext(ctx, query, userID).Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}

	notes, err := d.ListNotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Notes = notes

	return user, nil
}

func (d *DefaultRepository) CreateNote(ctx context.Context, userID model.UserID, note model.Note) error {
	query := `
		INSERT INTO notes (note_id, user_id, title, text, created_at, modified_at)
		VALUES ($1, (SELECT id FROM users WHERE user_id = $2), $3, $4, $5, $6)
	`

	_, err := d.db.ExecContext(ctx, query, note.ID, userID, note.Title, note.Text, note.CreatedAt, note.ModifiedAt)
	if err != nil {
		return fmt.Errorf("failed to create note for user '%s': %w", userID, err)
	}

	return nil
}

func (d *DefaultRepository) GetNote(ctx context.Context, noteID model.NoteID, userID model.UserID) (*model.Note, error) {
	note := &model.Note{}
	query := `
		SELECT n.note_id, n.title, n.text, n.created_at, n.modified_at
		FROM notes n
		JOIN users u ON u.id = n.user_id
		WHERE n.note_id = $1 AND u.user_id = $2
	`
	err := d.db.QueryRowContext(ctx, query, noteID, userID).Scan(&note.ID, &note.Title, &note.Text, &note.CreatedAt, &note.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note '%s' for user '%s': %w", noteID, userID, err)
	}
	return note, nil
}

func (d *DefaultRepository) UpdateNote(ctx context.Context, userID model.UserID, note model.Note) error {
	query := `
		UPDATE notes SET title = $1, text = $2, modified_at = $3
		WHERE note_id = $4 AND user_id = (SELECT id FROM users WHERE user_id = $5)
	`

	res, err := d.db.ExecContext(ctx, query, note.Title, note.Text, note.ModifiedAt, note.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to update note '%s' for user '%s': %w", note.ID, userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for note '%s': %w", note.ID, err)
	}
	if affected == 0 {
		return model.ErrNoteNotFound
	}

	return nil
}

func (d *DefaultRepository) DeleteNote(ctx context.Context, noteID model.NoteID, userID model.UserID) error {
	query := `
		DELETE FROM notes
		WHERE note_id = $1 AND user_id = (SELECT id FROM users WHERE user_id = $2)
	`

	if _, err := d.db.ExecContext(ctx, query, noteID, userID); err != nil {
		return fmt.Errorf("failed to delete note '%s' for user '%s': %w", noteID, userID, err)
	}

	return nil
}

func (d *DefaultRepository) ListNotes(ctx context.Context, userID model.UserID) ([]model.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "ListNotes_repo")
	defer span.End()

	queryBuilder := squirrel.
		Select("n.note_id",
			"n.title",
			"n.text",
			"n.created_at",
			"n.modified_at").
		From("notes n").
		Join("users u ON u.id = n.user_id").
		Where(squirrel.Eq{"u.user_id": userID}).
		OrderBy("n.id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Text, &note.CreatedAt, &note.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (d *DefaultRepository) SearchNoteByTitle(ctx context.Context, userID model.UserID, title string) (*model.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "SearchNoteByTitle_repo")
	defer span.End()

	queryBuilder := squirrel.
		Select("n.note_id",
			"n.title",
			"n.text",
			"n.created_at",
			"n.modified_at").
		From("notes n").
		Join("users u ON u.id = n.user_id").
		Where(squirrel.Eq{"u.user_id": userID}).
		Where("LOWER(n.title) = LOWER(?)", title).
		OrderBy("n.id").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	note := &model.Note{}
	err = d.db.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.Title, &note.Text, &note.CreatedAt, &note.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to search note by title '%s' for user '%s': %w", title, userID, err)
	}

	return note, nil
}
