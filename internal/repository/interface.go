package repository

import (
	"context"

	"github.com/shopfront/backend/internal/model"
)

// OrderRepository is the interface for order retention. Append assigns the
// store-local ID and initial status before returning the stored record.
type OrderRepository interface {
	Append(ctx context.Context, order *model.Order) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	FindByID(ctx context.Context, id int) (*model.Order, error)
}

// ContactRepository is the interface for contact message retention.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// UserRepository is the interface for user lookups.
type UserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
}
