// Package service declares the credential primitives the auth use case depends on.
package service

// PasswordHasher turns account passwords into one-way hashes and checks login attempts against them.
// Only the hash is ever persisted.
type PasswordHasher interface {
	// Hash returns a salted hash of password. It fails when the password exceeds the algorithm's input limit.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
