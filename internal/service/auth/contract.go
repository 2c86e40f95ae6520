package auth

import (
	"context"

	"github.com/ksolovey/notes-api/internal/model"
)

type (
	Service interface {
		SignUp(ctx context.Context, name, password string) (*model.User, error)
		Login(ctx context.Context, name, password string) (token string, user *model.User, err error)
	}
)
