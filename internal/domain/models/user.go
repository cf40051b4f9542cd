// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the plain directory record served by the CRUD API. It has no
// relationship to Member; the two collections evolved independently.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string             `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	IPAddress string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`

	// Slug is derived from the name fields at write time and doubles as a
	// human-readable lookup key.
	Slug string `bson:"slug,omitempty" json:"slug,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
