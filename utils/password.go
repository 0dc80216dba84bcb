package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// IsHashedPassword reports whether stored looks like a bcrypt hash.
func IsHashedPassword(stored string) bool {
	return strings.HasPrefix(stored, "$2")
}

// CheckPassword compares a stored password with the supplied one. Legacy rows
// still hold plaintext, which is compared directly.
func CheckPassword(stored, supplied string) bool {
	if IsHashedPassword(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored != "" && stored == supplied
}
