// Package apperr is the error pipeline: a closed set of operational error
// kinds, normalization of store-layer failures into those kinds, and a single
// top-level boundary that renders any error as the uniform JSON envelope.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind discriminates the operational error variants. Unknown marks
// programming or driver errors whose details must never reach a client.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	Validation
	Duplicate
	Unauthorized
	InvalidToken
	Internal // operational 500 whose message is safe to show
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Validation:
		return "validation"
	case Duplicate:
		return "duplicate_key"
	case Unauthorized:
		return "unauthorized"
	case InvalidToken:
		return "invalid_token"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is an operational failure carrying an HTTP status and a user-safe
// message. Err, when set, holds the underlying cause for server-side logs.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an operational error; the HTTP status follows the kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Status: statusOf(kind), Message: message}
}

// Newf is New with fmt formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap attaches an underlying cause to an operational error.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Status: statusOf(kind), Message: message, Err: err}
}

// InvalidID reports a malformed record identifier.
func InvalidID(value string) *Error {
	return Newf(Validation, "Invalid id: %s", value)
}

func statusOf(kind Kind) int {
	switch kind {
	case NotFound:
		return http.StatusNotFound
	case Validation, Duplicate, InvalidToken:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Internal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
