package password

type (
	// Hasher is a one-way salted hash and verify capability.
	Hasher interface {
		Hash(plaintext string) (string, error)
		Verify(plaintext, digest string) bool
	}
)
