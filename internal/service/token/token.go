package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ksolovey/notes-api/internal/model"
)

// TokenTTL is the fixed lifetime of an issued token. There is no refresh
// or rotation; a token is valid from issuance until natural expiry.
const TokenTTL = time.Hour

var (
	ErrMissingToken     = errors.New("token is missing")
	ErrExpired          = errors.New("token has expired")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrMalformed        = errors.New("token is malformed")
)

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// DefaultManager signs tokens with a process-wide HS256 secret loaded at
// startup. The secret is never rotated at runtime.
type DefaultManager struct {
	secret []byte
	now    func() time.Time
}

func NewDefaultManager(secret string) *DefaultManager {
	return &DefaultManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (d *DefaultManager) WithClock(now func() time.Time) *DefaultManager {
	d.now = now
	return d
}

func (d *DefaultManager) Issue(identity model.Identity) (string, error) {
	issuedAt := d.now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
		UserID: string(identity.UserID),
		Name:   identity.Name,
	})

	signed, err := t.SignedString(d.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry before any claim is read;
// an unverified payload is never trusted.
func (d *DefaultManager) Verify(raw string) (model.Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(d.now),
	)

	var parsed claims
	_, err := parser.ParseWithClaims(raw, &parsed, func(t *jwt.Token) (any, error) {
		return d.secret, nil
	})
	if err != nil {
		return model.Identity{}, mapJWTError(err)
	}

	return model.Identity{
		UserID: model.UserID(parsed.UserID),
		Name:   parsed.Name,
	}, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrMalformed
	}
}
