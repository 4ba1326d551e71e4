package product

import (
	"sync"
)

// Service owns the process-wide catalog. Reads go to the current Catalog
// snapshot; writes go to the repository and then swap in a fresh snapshot.
type Service struct {
	repo   Repository
	facets Facets

	mu      sync.RWMutex
	catalog *Catalog
}

// NewService loads the catalog from repo. facets may be the zero value, in
// which case vocabularies are derived from the products.
func NewService(repo Repository, facets Facets) (*Service, error) {
	s := &Service{repo: repo, facets: facets}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the catalog snapshot from the repository.
func (s *Service) Reload() error {
	products, err := s.repo.List()
	if err != nil {
		return err
	}
	c := NewCatalog(products, s.facets)
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()
	return nil
}

// Catalog returns the current read-only snapshot.
func (s *Service) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *Service) List() []Product {
	return s.Catalog().Products()
}

func (s *Service) GetByID(id string) (Product, error) {
	p, ok := s.Catalog().ByID(id)
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(p Product) (Product, error) {
	created, err := s.repo.Create(p)
	if err != nil {
		return Product{}, err
	}
	return created, s.Reload()
}

func (s *Service) Update(id string, p Product) (Product, error) {
	updated, err := s.repo.Update(id, p)
	if err != nil {
		return Product{}, err
	}
	return updated, s.Reload()
}

func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	return s.Reload()
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(products []Product) error {
	if err := s.repo.Reset(products); err != nil {
		return err
	}
	return s.Reload()
}
