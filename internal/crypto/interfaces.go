// Package crypto holds the password hashing used for stored credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns a plaintext password into a one-way hash and checks a
// plaintext candidate against a stored hash.
type PasswordHasher interface {
	// Hash returns the stored form of plaintext. Every call yields a
	// different salt, so two hashes of the same input never compare equal.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is
	// (false, nil); a malformed hash is reported as an error.
	Verify(plaintext, hash string) (bool, error)
}
