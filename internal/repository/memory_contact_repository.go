package repository

import (
	"context"
	"sync"

	"github.com/shopfront/backend/internal/model"
)

// MemoryContactRepository keeps accepted contact messages in memory for the
// lifetime of the process.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	messages []*model.ContactMessage
}

// NewMemoryContactRepository creates an empty in-memory contact store.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

// Save appends the contact message to the store.
func (r *MemoryContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *msg
	r.messages = append(r.messages, &stored)
	return nil
}

// List returns all stored contact messages in insertion order.
func (r *MemoryContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}
