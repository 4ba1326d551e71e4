package favorite

import "github.com/wichananm65/style-shop-backend/internal/product"

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Catalog() *product.Catalog
}

type Service struct {
	repo    Repository
	catalog CatalogSource
}

func NewService(repo Repository, catalog CatalogSource) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) exists(productID string) bool {
	_, ok := s.catalog.Catalog().ByID(productID)
	return ok
}

func (s *Service) Add(sessionID, productID string) ([]string, error) {
	if !s.exists(productID) {
		return nil, product.ErrNotFound
	}
	return s.repo.Add(sessionID, productID)
}

func (s *Service) Remove(sessionID, productID string) ([]string, error) {
	return s.repo.Remove(sessionID, productID)
}

// Toggle flips whether productID is on the wishlist. Removing a product that
// has since left the catalog is allowed.
func (s *Service) Toggle(sessionID, productID string) ([]string, bool, error) {
	if !s.Contains(sessionID, productID) && !s.exists(productID) {
		return nil, false, product.ErrNotFound
	}
	ids, added := s.repo.Toggle(sessionID, productID)
	return ids, added, nil
}

func (s *Service) Contains(sessionID, productID string) bool {
	for _, id := range s.repo.List(sessionID) {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *Service) List(sessionID string) []string {
	return s.repo.List(sessionID)
}

// Products resolves the wishlist against the catalog, skipping ids that are
// no longer sold.
func (s *Service) Products(sessionID string) []product.Product {
	c := s.catalog.Catalog()
	out := make([]product.Product, 0)
	for _, id := range s.repo.List(sessionID) {
		if p, ok := c.ByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}
