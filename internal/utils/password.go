package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

// maxPasswordBytes is the input limit of bcrypt.
const maxPasswordBytes = 72

// PasswordHasher produces and checks salted bcrypt password hashes.
// The zero value uses bcrypt.DefaultCost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher using the given bcrypt cost.
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// HashPassword returns the bcrypt hash of password. bcrypt generates a fresh
// random salt per call, so hashing the same password twice yields different
// strings.
func (p *PasswordHasher) HashPassword(password string) (string, error) {
	cost := p.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks password against a hash produced by HashPassword.
// Returns ErrPasswordMismatch on a wrong password (including one too long to
// have been hashed) and a wrapped error when the stored hash is malformed.
func (p *PasswordHasher) ComparePassword(hash, password string) error {
	// bcrypt only reads the first 72 bytes; longer input was never hashed
	if len(password) > maxPasswordBytes {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
