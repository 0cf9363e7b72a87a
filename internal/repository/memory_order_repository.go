package repository

import (
	"context"
	"sync"

	"github.com/shopfront/backend/internal/model"
)

// MemoryOrderRepository keeps accepted orders in an append-only slice for
// the lifetime of the process. IDs are derived from the current list length;
// appends are serialized by the mutex, which is what keeps them unique.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*model.Order
}

// NewMemoryOrderRepository creates an empty in-memory order store.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// Append stores the order, assigning its ID and initial "pending" status.
// The stored copy is returned.
func (r *MemoryOrderRepository) Append(ctx context.Context, order *model.Order) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.ID = len(r.orders) + 1
	stored.Status = model.OrderStatusPending
	r.orders = append(r.orders, &stored)
	return &stored, nil
}

// List returns all stored orders in insertion order.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// FindByID returns the order with the given ID, or ErrNotFound.
func (r *MemoryOrderRepository) FindByID(ctx context.Context, id int) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrNotFound
}
