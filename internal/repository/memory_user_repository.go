package repository

import (
	"context"

	"github.com/shopfront/backend/internal/model"
)

// MemoryUserRepository serves a fixed user list. Users are seeded at
// construction and never mutated, so reads need no locking.
type MemoryUserRepository struct {
	users []*model.User
}

// NewMemoryUserRepository creates a user store seeded with the given users.
func NewMemoryUserRepository(users []*model.User) *MemoryUserRepository {
	return &MemoryUserRepository{users: users}
}

// SeedUsers is the default demo user list served by GET /api/users.
func SeedUsers() []*model.User {
	return []*model.User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Role: "admin"},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Role: "customer"},
		{ID: 3, Name: "Carol Davis", Email: "carol@example.com", Role: "customer"},
	}
}

// List returns all users.
func (r *MemoryUserRepository) List(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// FindByID returns the user with the given ID, or ErrNotFound.
func (r *MemoryUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}
