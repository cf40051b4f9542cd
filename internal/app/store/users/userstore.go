// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/rosterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no user record matches the identifier.
	ErrNotFound = errors.New("no user found with that ID")
	// ErrDuplicateEmail is returned when a uniqueness constraint on email is violated.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

// ListOptions shapes a list query. The zero value returns every record in
// insertion order with all fields.
type ListOptions struct {
	Limit  int64
	Sort   string   // field name; "-" prefix sorts descending
	Fields []string // projection; empty selects everything
	Gender string   // filter on the gender field when non-empty
}

// Repository is the store surface the user handlers consume. The Mongo
// implementation lives in this package; tests use an in-memory one.
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetBySlug(ctx context.Context, slug string) (*models.User, error)
	Create(ctx context.Context, in NewUser) (models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Store is the Mongo-backed Repository.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// List returns records matching opts; an empty result is not an error.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.User, error) {
	filter := bson.M{}
	if opts.Gender != "" {
		filter["gender"] = opts.Gender
	}

	fo := options.Find()
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	if opts.Sort != "" {
		field, dir := opts.Sort, 1
		if field[0] == '-' {
			field, dir = field[1:], -1
		}
		fo.SetSort(bson.D{{Key: field, Value: dir}})
	}
	if len(opts.Fields) > 0 {
		proj := bson.M{}
		for _, f := range opts.Fields {
			proj[f] = 1
		}
		fo.SetProjection(proj)
	}

	cur, err := s.c.Find(ctx, filter, fo)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&u); err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}

// Create runs the write-path pipeline and inserts the record with
// server-assigned ID and timestamps.
func (s *Store) Create(ctx context.Context, in NewUser) (models.User, error) {
	u, err := Build(in)
	if err != nil {
		return models.User{}, err
	}
	u.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Update applies partial field updates to an existing record, re-running
// validation and slug derivation. A missing identifier never creates a
// record.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.User, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u, err := ApplyUpdate(*existing, upd)
	if err != nil {
		return nil, err
	}
	u.UpdatedAt = time.Now().UTC()

	set := bson.M{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"gender":     u.Gender,
		"ip_address": u.IPAddress,
		"slug":       u.Slug,
		"updated_at": u.UpdatedAt,
	}
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.User
	if err := res.Decode(&updated); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, mapNotFound(err)
	}
	return &updated, nil
}

// Delete removes a record; a missing identifier reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll purges the collection; used by the seed tooling.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
