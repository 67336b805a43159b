package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPIN hashes a transaction PIN. Same bcrypt scheme as passwords; kept as
// a separate name so call sites read correctly.
func HashPIN(pin string) (string, error) {
	return HashPassword(pin)
}

// CheckPINHash verifies a presented PIN against a stored bcrypt hash.
// An empty hash never matches.
func CheckPINHash(pin, hash string) bool {
	if hash == "" {
		return false
	}
	return CheckPasswordHash(pin, hash)
}
