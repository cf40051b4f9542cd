// internal/app/store/users/build.go
package userstore

import (
	"errors"
	"fmt"

	"github.com/dalemusser/rosterhub/internal/app/system/authutil"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/sanitize"
	"github.com/dalemusser/rosterhub/internal/app/system/slugs"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Genders lists the accepted values for the gender field.
var Genders = []string{"Male", "Female", "Bigender", "Genderqueer", "Genderfluid"}

// ErrInvalidInput is the base of every field-validation failure produced by
// this package; specific causes wrap it so callers can classify with
// errors.Is while still surfacing the field-level message.
var ErrInvalidInput = errors.New("invalid input data")

const (
	maxFirstNameLen = 40
	minLastNameLen  = 3
)

// NewUser is the client-supplied payload for creating a user record.
type NewUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	IPAddress string `json:"ip_address"`
}

// Update holds partial field updates; nil pointers leave fields untouched.
type Update struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Gender    *string `json:"gender"`
	IPAddress *string `json:"ip_address"`
}

// Build runs the write-path pipeline over a new-user payload in fixed order:
// sanitize names, normalize email, validate, compute the slug. The returned
// record has no ID or timestamps; the store assigns those at insert time.
func Build(in NewUser) (models.User, error) {
	u := models.User{
		FirstName: sanitize.Text(in.FirstName),
		LastName:  sanitize.Text(in.LastName),
		Email:     normalize.Email(in.Email),
		Gender:    in.Gender,
		IPAddress: in.IPAddress,
	}
	if err := validate(&u); err != nil {
		return models.User{}, err
	}
	u.Slug = slugs.ForName(u.FirstName, u.LastName)
	return u, nil
}

// ApplyUpdate re-runs the pipeline over a stored record with partial updates
// applied. The slug is recomputed whenever either name field changed.
func ApplyUpdate(u models.User, upd Update) (models.User, error) {
	if upd.FirstName != nil {
		u.FirstName = sanitize.Text(*upd.FirstName)
	}
	if upd.LastName != nil {
		u.LastName = sanitize.Text(*upd.LastName)
	}
	if upd.Email != nil {
		u.Email = normalize.Email(*upd.Email)
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.IPAddress != nil {
		u.IPAddress = *upd.IPAddress
	}
	if err := validate(&u); err != nil {
		return models.User{}, err
	}
	u.Slug = slugs.ForName(u.FirstName, u.LastName)
	return u, nil
}

// validate enforces the schema constraints and canonicalizes the gender
// value to its enum spelling.
func validate(u *models.User) error {
	if u.FirstName == "" {
		return fmt.Errorf("%w: a user must have a first_name", ErrInvalidInput)
	}
	if len(u.FirstName) > maxFirstNameLen {
		return fmt.Errorf("%w: a first name must be %d characters or fewer", ErrInvalidInput, maxFirstNameLen)
	}
	if len(u.LastName) < minLastNameLen {
		return fmt.Errorf("%w: a last name must be at least %d characters", ErrInvalidInput, minLastNameLen)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: a user must have an email", ErrInvalidInput)
	}
	if !authutil.ValidEmail(u.Email) {
		return fmt.Errorf("%w: %q is not a valid email address", ErrInvalidInput, u.Email)
	}
	if u.Gender != "" {
		canonical, ok := CanonicalGender(u.Gender)
		if !ok {
			return fmt.Errorf("%w: %q is not a supported gender", ErrInvalidInput, u.Gender)
		}
		u.Gender = canonical
	}
	return nil
}

// CanonicalGender folds value against the enum and returns its canonical
// spelling. Stored records always carry the canonical form, so filters must
// fold client input the same way the write path does.
func CanonicalGender(value string) (string, bool) {
	for _, g := range Genders {
		if text.Fold(value) == text.Fold(g) {
			return g, true
		}
	}
	return "", false
}
