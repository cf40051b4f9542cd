// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is an authenticable account.
//
// The password hash and reset fields are storage-only and are never
// serialized into API output.
type Member struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role" json:"role"` // admin | user

	PasswordHash      string    `bson:"password_hash" json:"-"`
	PasswordChangedAt time.Time `bson:"password_changed_at,omitempty" json:"-"`

	// Reset fields are present only while a password-reset flow is in
	// progress. Only the SHA-256 digest of the reset secret is stored; the
	// plaintext is handed to the member out of band and never persisted.
	PasswordResetTokenHash string     `bson:"password_reset_token_hash,omitempty" json:"-"`
	PasswordResetExpiresAt *time.Time `bson:"password_reset_expires_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PasswordChangedAfter reports whether the password was changed after the
// given token issuance time. JWT iat carries whole-second precision while
// Mongo stores milliseconds, so the comparison happens at second precision.
func (m *Member) PasswordChangedAfter(issuedAt time.Time) bool {
	if m.PasswordChangedAt.IsZero() {
		return false
	}
	return m.PasswordChangedAt.Unix() > issuedAt.Unix()
}
