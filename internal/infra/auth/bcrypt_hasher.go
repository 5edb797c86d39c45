// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"healthtrack/config"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/service"
	"healthtrack/internal/errors"
)

const (
	defaultMinLength = 6
	// bcrypt ignores everything after 72 bytes.
	bcryptMaxLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinLength}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy builds a hasher with an explicit cost and policy.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinLength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxLength {
		policy.MaxLength = bcryptMaxLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured policy and explains the first rule that fails.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	length := len([]rune(password))

	switch {
	case length < p.MinLength:
		return weak("must be at least %d characters long", p.MinLength)
	case len(password) > p.MaxLength:
		return weak("must be at most %d bytes long", p.MaxLength)
	case p.RequireLowercase && !h.hasLowercase(password):
		return weak("must contain at least one lowercase letter")
	case p.RequireUppercase && !h.hasUppercase(password):
		return weak("must contain at least one uppercase letter")
	case p.RequireNumbers && !h.hasNumbers(password):
		return weak("must contain at least one number")
	case p.RequireSpecial && !h.hasSpecialChars(password):
		return weak("must contain at least one special character")
	case h.containsForbiddenWords(password, p.ForbiddenWords):
		return weak("contains forbidden words")
	}

	return nil
}

func weak(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails(errors.Errorf(format, args...).Error())
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}

	return false
}
