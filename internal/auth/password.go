package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	developmentCost = bcrypt.MinCost
	productionCost  = 14
	maxPasswordLen  = 72
)

var ErrInvalidPassword = errors.New("password must be a valid string")

// PasswordHasher wraps bcrypt with an environment-dependent work factor
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the production work factor when
// production is true and the minimum bcrypt cost otherwise.
func NewPasswordHasher(production bool) *PasswordHasher {
	cost := developmentCost
	if production {
		cost = productionCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the bcrypt work factor used by Hash
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt hash of password. Input bcrypt cannot
// represent is rejected up front with ErrInvalidPassword.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if !utf8.ValidString(password) || len(password) > maxPasswordLen {
		return "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. Malformed input and bcrypt
// errors yield false; it never reports an error.
func (h *PasswordHasher) Compare(password, hash string) bool {
	if hash == "" || !utf8.ValidString(password) || len(password) > maxPasswordLen {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
