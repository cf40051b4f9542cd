// internal/testutil/memstore.go
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemUserStore is an in-memory userstore.Repository for hermetic handler
// tests. Projections are ignored; handlers only shape what they return.
type MemUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{}
}

func (s *MemUserStore) List(ctx context.Context, opts userstore.ListOptions) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.User{}
	for _, u := range s.users {
		if opts.Gender != "" && u.Gender != opts.Gender {
			continue
		}
		out = append(out, u)
	}
	if opts.Sort == "created_at" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	}
	if opts.Sort == "-created_at" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *MemUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, userstore.ErrNotFound
}

func (s *MemUserStore) GetBySlug(ctx context.Context, slug string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Slug == slug {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, userstore.ErrNotFound
}

func (s *MemUserStore) Create(ctx context.Context, in userstore.NewUser) (models.User, error) {
	u, err := userstore.Build(in)
	if err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return models.User{}, userstore.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, u)
	return u, nil
}

func (s *MemUserStore) Update(ctx context.Context, id primitive.ObjectID, upd userstore.Update) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u, err := userstore.ApplyUpdate(s.users[i], upd)
		if err != nil {
			return nil, err
		}
		for j := range s.users {
			if j != i && s.users[j].Email == u.Email {
				return nil, userstore.ErrDuplicateEmail
			}
		}
		u.UpdatedAt = time.Now().UTC()
		s.users[i] = u
		out := u
		return &out, nil
	}
	return nil, userstore.ErrNotFound
}

func (s *MemUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return userstore.ErrNotFound
}

// MemMemberStore is an in-memory memberstore.Repository.
type MemMemberStore struct {
	mu      sync.Mutex
	members []models.Member
}

func NewMemMemberStore() *MemMemberStore {
	return &MemMemberStore{}
}

func (s *MemMemberStore) Create(ctx context.Context, in memberstore.NewMember) (models.Member, error) {
	m, err := memberstore.Build(in)
	if err != nil {
		return models.Member{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].Email == m.Email {
			return models.Member{}, memberstore.ErrDuplicateEmail
		}
	}
	m.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.members = append(s.members, m)
	return m, nil
}

func (s *MemMemberStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			m := s.members[i]
			return &m, nil
		}
	}
	return nil, memberstore.ErrNotFound
}

func (s *MemMemberStore) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].Email == email {
			m := s.members[i]
			return &m, nil
		}
	}
	return nil, memberstore.ErrNotFound
}

func (s *MemMemberStore) List(ctx context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Member, len(s.members))
	copy(out, s.members)
	return out, nil
}

func (s *MemMemberStore) SetResetToken(ctx context.Context, id primitive.ObjectID, digest string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].PasswordResetTokenHash = digest
			exp := expiresAt
			s.members[i].PasswordResetExpiresAt = &exp
			return nil
		}
	}
	return memberstore.ErrNotFound
}

func (s *MemMemberStore) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].PasswordResetTokenHash = ""
			s.members[i].PasswordResetExpiresAt = nil
			return nil
		}
	}
	return memberstore.ErrNotFound
}

func (s *MemMemberStore) ResetPassword(ctx context.Context, digest, newPasswordHash string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for i := range s.members {
		m := &s.members[i]
		if m.PasswordResetTokenHash != digest || m.PasswordResetTokenHash == "" {
			continue
		}
		if m.PasswordResetExpiresAt == nil || !m.PasswordResetExpiresAt.After(now) {
			continue
		}
		m.PasswordHash = newPasswordHash
		m.PasswordChangedAt = now
		m.UpdatedAt = now
		m.PasswordResetTokenHash = ""
		m.PasswordResetExpiresAt = nil
		out := *m
		return &out, nil
	}
	return nil, memberstore.ErrResetInvalid
}
