// Package service declares the stateless collaborators usecases depend on:
// hashing, tokens, image storage and the clock.
package service

// PasswordHasher hides the hashing algorithm from the account usecases.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength applies the configured password policy.
	ValidatePasswordStrength(password string) error
}
