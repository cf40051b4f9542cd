// Package indexes declares the MongoDB indexes the service relies on and
// ensures they exist at startup.
package indexes

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates every required index. Failures are collected so one bad
// collection does not hide the rest.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, fmt.Sprintf("members: %v", err))
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, fmt.Sprintf("users: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("ensure indexes: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ensureMembers enforces email uniqueness and speeds up the reset-token
// lookup.
func ensureMembers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("members").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "password_reset_token_hash", Value: 1}},
			Options: options.Index().SetSparse(true).SetName("reset_token_hash"),
		},
	})
	return err
}

// ensureUsers enforces email uniqueness and backs slug lookups.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug"),
		},
	})
	return err
}
