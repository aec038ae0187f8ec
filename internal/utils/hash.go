package utils

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/example/gigwork/internal/apperrors"
)

// MinPasswordLength is the platform password policy floor.
const MinPasswordLength = 8

// HashPassword returns a bcrypt hash of the provided password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the platform strength policy: at least
// MinPasswordLength characters, containing at least one letter and one digit.
func ValidatePasswordStrength(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.Validation("password", "password must be at least 8 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return apperrors.Validation("password", "password must contain at least one letter and one digit")
	}

	return nil
}
