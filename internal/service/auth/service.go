package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ksolovey/notes-api/internal/model"
	"github.com/ksolovey/notes-api/internal/repository/notes"
	"github.com/ksolovey/notes-api/internal/service/password"
	"github.com/ksolovey/notes-api/internal/service/token"
)

type DefaultService struct {
	repo   notes.Repository
	hasher password.Hasher
	tokens token.Manager
}

func NewDefaultService(repo notes.Repository, hasher password.Hasher, tokens token.Manager) *DefaultService {
	return &DefaultService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// SignUp registers a new account. The name is trimmed and must be unique
// with a case-sensitive exact match.
func (d *DefaultService) SignUp(ctx context.Context, name, plaintext string) (*model.User, error) {
	name = strings.TrimSpace(name)

	exists, err := d.repo.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrNameTaken
	}

	hash, err := d.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           model.UserID(uuid.NewString()),
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err = d.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login resolves the account and issues a token. A missing name and a wrong
// password both fail with ErrInvalidCredentials so that registered names
// cannot be probed.
func (d *DefaultService) Login(ctx context.Context, name, plaintext string) (string, *model.User, error) {
	user, err := d.repo.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil, model.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !d.hasher.Verify(plaintext, user.PasswordHash) {
		return "", nil, model.ErrInvalidCredentials
	}

	signed, err := d.tokens.Issue(model.Identity{UserID: user.ID, Name: user.Name})
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token for user '%s': %w", user.ID, err)
	}

	return signed, user, nil
}
