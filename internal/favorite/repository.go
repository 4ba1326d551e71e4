package favorite

import (
	"errors"
	"slices"
	"sync"
)

var (
	ErrAlreadyFavorite = errors.New("product already in favorites")
	ErrNotFavorite     = errors.New("product not in favorites")
)

// Repository stores each session's wishlist as product ids in the order they
// were added.
type Repository interface {
	Add(sessionID, productID string) ([]string, error)
	Remove(sessionID, productID string) ([]string, error)
	// Toggle adds productID when absent and removes it otherwise. added
	// reports which happened.
	Toggle(sessionID, productID string) (ids []string, added bool)
	List(sessionID string) []string
}

// InMemoryRepository keeps wishlists for the life of the process.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string][]string)}
}

func (r *InMemoryRepository) Add(sessionID, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.lists[sessionID]
	if slices.Contains(ids, productID) {
		return nil, ErrAlreadyFavorite
	}
	r.lists[sessionID] = append(ids, productID)
	return slices.Clone(r.lists[sessionID]), nil
}

func (r *InMemoryRepository) Remove(sessionID, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.lists[sessionID]
	i := slices.Index(ids, productID)
	if i < 0 {
		return nil, ErrNotFavorite
	}
	ids = slices.Delete(slices.Clone(ids), i, i+1)
	r.store(sessionID, ids)
	return slices.Clone(ids), nil
}

func (r *InMemoryRepository) Toggle(sessionID, productID string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := slices.Clone(r.lists[sessionID])
	added := false
	if i := slices.Index(ids, productID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, productID)
		added = true
	}
	r.store(sessionID, ids)
	return slices.Clone(ids), added
}

func (r *InMemoryRepository) List(sessionID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.lists[sessionID]))
	copy(out, r.lists[sessionID])
	return out
}

// store assumes the write lock is held.
func (r *InMemoryRepository) store(sessionID string, ids []string) {
	if len(ids) == 0 {
		delete(r.lists, sessionID)
		return
	}
	r.lists[sessionID] = ids
}
