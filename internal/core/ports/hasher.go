package ports

// PasswordHasher one-way transforms a plaintext password into a stored
// digest and verifies candidates against it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
