package cart

import (
	"github.com/wichananm65/style-shop-backend/internal/product"
)

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Catalog() *product.Catalog
}

// Summary is a cart with its totals.
type Summary struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func summarize(items []Item) Summary {
	return Summary{Items: items, TotalItems: TotalItems(items), TotalPrice: TotalPrice(items)}
}

// Service orchestrates cart operations.
type Service struct {
	repo    Repository
	catalog CatalogSource
}

func NewService(repo Repository, catalog CatalogSource) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) Get(sessionID string) Summary {
	return summarize(s.repo.Get(sessionID))
}

func (s *Service) Add(sessionID, productID, size, color string, qty int) (Summary, error) {
	p, ok := s.catalog.Catalog().ByID(productID)
	if !ok {
		return Summary{}, product.ErrNotFound
	}
	items, err := s.repo.Update(sessionID, func(items []Item) ([]Item, error) {
		return Add(items, p, size, color, qty)
	})
	return summarize(items), err
}

func (s *Service) UpdateQuantity(sessionID string, l Line, qty int) (Summary, error) {
	items, err := s.repo.Update(sessionID, func(items []Item) ([]Item, error) {
		return UpdateQuantity(items, l, qty)
	})
	return summarize(items), err
}

func (s *Service) Remove(sessionID string, l Line) (Summary, error) {
	items, err := s.repo.Update(sessionID, func(items []Item) ([]Item, error) {
		return Remove(items, l)
	})
	return summarize(items), err
}

// Clear empties a session's cart.
func (s *Service) Clear(sessionID string) {
	s.repo.Clear(sessionID)
}

// ProductIDs lists the distinct product ids in the session's cart in line
// order.
func (s *Service) ProductIDs(sessionID string) []string {
	var ids []string
	seen := map[string]bool{}
	for _, it := range s.repo.Get(sessionID) {
		if !seen[it.Product.ID] {
			seen[it.Product.ID] = true
			ids = append(ids, it.Product.ID)
		}
	}
	return ids
}
