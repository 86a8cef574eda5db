package ports

// PasswordHasher is the one-way credential hashing contract.
// Implementations must salt every hash so equal inputs produce distinct outputs.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash is a
	// mismatch, never an error or a panic.
	Verify(plaintext, hash string) bool
}
