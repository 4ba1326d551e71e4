package cart

import (
	"sync"
)

// Repository stores carts by session id.
type Repository interface {
	Get(sessionID string) []Item
	// Update applies fn to the session's items and stores the result unless
	// fn fails. The returned items are a copy.
	Update(sessionID string, fn func([]Item) ([]Item, error)) ([]Item, error)
	Clear(sessionID string)
}

// InMemoryRepository keeps carts for the life of the process.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Item)}
}

func (r *InMemoryRepository) Get(sessionID string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.carts[sessionID])
}

func (r *InMemoryRepository) Update(sessionID string, fn func([]Item) ([]Item, error)) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, err := fn(clone(r.carts[sessionID]))
	if err != nil {
		return clone(r.carts[sessionID]), err
	}
	if len(items) == 0 {
		delete(r.carts, sessionID)
	} else {
		r.carts[sessionID] = items
	}
	return clone(items), nil
}

func (r *InMemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

func clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
