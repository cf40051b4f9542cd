// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no member matches the identifier.
	ErrNotFound = errors.New("member not found")
	// ErrDuplicateEmail is returned when a member with the email already exists.
	ErrDuplicateEmail = errors.New("a member with this email already exists")
	// ErrResetInvalid is returned when a reset digest does not match any
	// member, has expired, or was already consumed.
	ErrResetInvalid = errors.New("reset token is invalid or has expired")
)

// Repository is the store surface consumed by the member handlers and the
// auth middleware. The Mongo implementation lives in this package; tests use
// an in-memory one.
type Repository interface {
	Create(ctx context.Context, in NewMember) (models.Member, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
	SetResetToken(ctx context.Context, id primitive.ObjectID, digest string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id primitive.ObjectID) error
	ResetPassword(ctx context.Context, digest, newPasswordHash string) (*models.Member, error)
}

// Store is the Mongo-backed Repository.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

// Create validates, hashes, and inserts a new member.
func (s *Store) Create(ctx context.Context, in NewMember) (models.Member, error) {
	m, err := Build(in)
	if err != nil {
		return models.Member{}, err
	}
	m.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicateEmail
		}
		return models.Member{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

// GetByEmail looks up a member by case-normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&m); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

func (s *Store) List(ctx context.Context) ([]models.Member, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []models.Member{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SetResetToken stores the reset-secret digest and its expiry on the member.
func (s *Store) SetResetToken(ctx context.Context, id primitive.ObjectID, digest string, expiresAt time.Time) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_reset_token_hash": digest,
		"password_reset_expires_at": expiresAt,
		"updated_at":                time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearResetToken removes any in-progress reset state, e.g. after a failed
// notification delivery.
func (s *Store) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$unset": bson.M{
			"password_reset_token_hash": "",
			"password_reset_expires_at": "",
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// ResetPassword consumes an unexpired reset digest in a single guarded
// update: it replaces the password hash, refreshes password_changed_at, and
// clears the reset fields. A digest that does not match, has expired, or was
// already consumed reports ErrResetInvalid, which makes the token single-use
// even under concurrent replay.
func (s *Store) ResetPassword(ctx context.Context, digest, newPasswordHash string) (*models.Member, error) {
	now := time.Now().UTC()
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{
			"password_reset_token_hash": digest,
			"password_reset_expires_at": bson.M{"$gt": now},
		},
		bson.M{
			"$set": bson.M{
				"password_hash":       newPasswordHash,
				"password_changed_at": now,
				"updated_at":          now,
			},
			"$unset": bson.M{
				"password_reset_token_hash": "",
				"password_reset_expires_at": "",
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var m models.Member
	if err := res.Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrResetInvalid
		}
		return nil, err
	}
	return &m, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
