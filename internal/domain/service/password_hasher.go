// Package service declares the ports the usecase layer depends on: token
// issuance, password hashing, outbound email, geocoding, media storage and
// spreadsheet parsing. Implementations live under internal/infra.
package service

// PasswordHasher hashes credentials for storage and verifies login attempts.
// Keeping it behind an interface leaves the cost parameters and algorithm to
// the infra layer.
type PasswordHasher interface {
	// Hash produces a salted hash of the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored hash.
	Check(password, hash string) bool
}
