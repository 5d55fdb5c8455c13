// Package crypto implements the password-hashing primitives used by the
// authentication service. Hashing is one-way: the plaintext password is
// never persisted and never read back.
package crypto

// PasswordHasher hashes plaintext passwords into a self-describing encoded
// form and verifies candidate passwords against stored hashes.
//
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash derives a one-way hash of the given plaintext password and
	// returns it in an encoded form that embeds the salt and the
	// derivation parameters.
	Hash(password string) (string, error)

	// Verify compares the plaintext password against the encoded hash.
	// Returns nil on match and ErrPasswordMismatch on mismatch.
	Verify(password, encodedHash string) error
}
