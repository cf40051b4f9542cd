// internal/app/store/members/build.go
package memberstore

import (
	"errors"
	"fmt"

	"github.com/dalemusser/rosterhub/internal/app/system/authutil"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/sanitize"
	"github.com/dalemusser/rosterhub/internal/domain/models"
)

// ErrInvalidInput is the base of every field-validation failure produced by
// this package.
var ErrInvalidInput = errors.New("invalid input data")

// NewMember is the client-supplied signup payload.
type NewMember struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	PasswordConfirmed string `json:"passwordConfirmed"`
	Role              string `json:"role"`
}

// Build validates a signup payload and produces a Member with the password
// hashed. Hashing happens here, exactly once, at write time; the plaintext
// never leaves this function. The record has no ID or timestamps yet.
func Build(in NewMember) (models.Member, error) {
	m := models.Member{
		Name:  sanitize.Text(in.Name),
		Email: normalize.Email(in.Email),
		Role:  normalize.Role(in.Role),
	}
	if m.Name == "" {
		return models.Member{}, fmt.Errorf("%w: please provide a name", ErrInvalidInput)
	}
	if m.Email == "" {
		return models.Member{}, fmt.Errorf("%w: please provide an email address", ErrInvalidInput)
	}
	if !authutil.ValidEmail(m.Email) {
		return models.Member{}, fmt.Errorf("%w: %q is not a valid email address", ErrInvalidInput, m.Email)
	}
	if m.Role == "" {
		m.Role = "user"
	}
	if m.Role != "user" && m.Role != "admin" {
		return models.Member{}, fmt.Errorf(`%w: role must be "user" or "admin"`, ErrInvalidInput)
	}
	if err := authutil.ValidatePassword(in.Password); err != nil {
		return models.Member{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Password != in.PasswordConfirmed {
		return models.Member{}, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		return models.Member{}, fmt.Errorf("hash password: %w", err)
	}
	m.PasswordHash = hash
	return m, nil
}
