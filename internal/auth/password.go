package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned when a password does not match its hash
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// HashPassword hashes a plaintext password at the given bcrypt cost
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// ComparePassword checks a plaintext password against a stored hash.
// A malformed hash is reported as a mismatch.
func ComparePassword(hashed, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
