// internal/app/system/apperr/normalize.go
package apperr

import (
	"errors"
	"fmt"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
)

// FromStore classifies a store-layer failure into an operational error with
// a client-safe message. resource names the record type for the not-found
// message ("user", "member"). Anything it cannot classify becomes Unknown
// and keeps the cause for logs.
func FromStore(err error, resource string) *Error {
	switch {
	case errors.Is(err, userstore.ErrNotFound), errors.Is(err, memberstore.ErrNotFound):
		return Newf(NotFound, "No %s found with that ID", resource)
	case errors.Is(err, userstore.ErrDuplicateEmail), errors.Is(err, memberstore.ErrDuplicateEmail):
		return New(Duplicate, "Duplicate field value: email. Please use another value!")
	case errors.Is(err, userstore.ErrInvalidInput), errors.Is(err, memberstore.ErrInvalidInput):
		return New(Validation, err.Error())
	case errors.Is(err, memberstore.ErrResetInvalid):
		return New(InvalidToken, "Token is invalid or has expired")
	case wafflemongo.IsDup(err):
		return New(Duplicate, "Duplicate field value. Please use another value!")
	default:
		return Wrap(err, Unknown, fmt.Sprintf("%s operation failed", resource))
	}
}
