// internal/app/system/authutil/authutil.go
package authutil

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// minPasswordLen matches the account schema's password constraint.
const minPasswordLen = 8

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// dummyHash is a throwaway digest at the same cost as real credentials.
var dummyHash, _ = HashPassword("timing-equalizer-pad")

// CheckDummyPassword burns a bcrypt compare against a hash that belongs to
// no account. Login calls it on the unknown-email path so that path costs
// the same as a wrong-password compare and response timing does not reveal
// whether an account exists.
func CheckDummyPassword(password string) {
	CheckPassword(dummyHash, password)
}

// ValidatePassword enforces the password policy for new credentials.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// ValidEmail reports whether s looks like an email address. The check is
// deliberately loose; deliverability is the mailer's problem.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
