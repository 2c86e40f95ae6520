package token

import "github.com/ksolovey/notes-api/internal/model"

type (
	// Manager issues and verifies signed, time-bounded identity assertions.
	Manager interface {
		Issue(identity model.Identity) (string, error)
		Verify(raw string) (model.Identity, error)
	}
)
