// Package storefront assembles the shop page: the product grid, the
// recommendation strip and the recent-search list.
package storefront

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/style-shop-backend/internal/filter"
	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/recommended"
	"github.com/wichananm65/style-shop-backend/internal/search"
)

// Panel names reported in Page.FailedPanels.
const (
	PanelProducts        = "products"
	PanelRecommendations = "recommendations"
	PanelRecentSearches  = "recentSearches"
)

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Catalog() *product.Catalog
}

// Request describes one page view.
type Request struct {
	SessionID string
	UserID    string
	Query     string
	Filter    filter.Query
	// Viewed is passed to the recommender. Nil means "use the session's
	// cart".
	Viewed []string
}

// Page is the composed storefront. Panels that failed are empty and named in
// FailedPanels.
type Page struct {
	Query           string             `json:"query"`
	Scored          bool               `json:"scored"`
	Products        []search.Result    `json:"products"`
	TotalProducts   int                `json:"totalProducts"`
	Recommendations []recommended.Item `json:"recommendations"`
	RecentSearches  []string           `json:"recentSearches"`
	Facets          product.Facets     `json:"facets"`
	FailedPanels    []string           `json:"failedPanels"`
	Filter          filter.State       `json:"filter"`
	Category        string             `json:"category"`
	Sort            filter.SortKey     `json:"sort"`
}

type Service struct {
	catalog CatalogSource
	search  *search.Service
	recs    *recommended.Service
	viewed  recommended.ViewedSource
	log     *slog.Logger
}

func NewService(catalog CatalogSource, searchSvc *search.Service, recs *recommended.Service, viewed recommended.ViewedSource, log *slog.Logger) *Service {
	return &Service{catalog: catalog, search: searchSvc, recs: recs, viewed: viewed, log: log}
}

// Compose runs the product and recommendation panels concurrently. Panel
// failures never fail the page. The only error is an unknown sort key,
// which is rejected before any panel runs.
func (s *Service) Compose(ctx context.Context, req Request) (Page, error) {
	if !req.Filter.Sort.Valid() {
		return Page{}, filter.ErrUnknownSort
	}

	page := Page{
		Query:           req.Query,
		Products:        []search.Result{},
		Recommendations: []recommended.Item{},
		RecentSearches:  []string{},
		Facets:          s.catalog.Catalog().Facets(),
		FailedPanels:    []string{},
		Filter:          req.Filter.State,
		Category:        req.Filter.Category,
		Sort:            req.Filter.Sort,
	}

	var productsFailed, recsFailed, recentFailed bool
	var g errgroup.Group

	g.Go(func() error {
		results, scored, err := s.search.Search(ctx, req.SessionID, req.Query)
		if err != nil {
			s.log.Error("storefront products panel", "query", req.Query, "err", err)
			productsFailed = true
		} else {
			page.Products = narrow(results, req.Filter)
			page.Scored = scored
		}

		// read after the search so the list includes this query
		recent, err := s.search.Recent(ctx, req.SessionID)
		if err != nil {
			s.log.Warn("storefront recent searches panel", "err", err)
			recentFailed = true
		} else if recent != nil {
			page.RecentSearches = recent
		}
		return nil
	})

	g.Go(func() error {
		viewed := req.Viewed
		if viewed == nil && s.viewed != nil {
			viewed = s.viewed.ProductIDs(req.SessionID)
		}
		items, err := s.recs.Recommend(ctx, req.UserID, viewed, nil)
		if err != nil {
			s.log.Error("storefront recommendations panel", "user", req.UserID, "err", err)
			recsFailed = true
			return nil
		}
		page.Recommendations = items
		return nil
	})

	_ = g.Wait()

	page.TotalProducts = len(page.Products)
	if productsFailed {
		page.FailedPanels = append(page.FailedPanels, PanelProducts)
	}
	if recsFailed {
		page.FailedPanels = append(page.FailedPanels, PanelRecommendations)
	}
	if recentFailed {
		page.FailedPanels = append(page.FailedPanels, PanelRecentSearches)
	}
	return page, nil
}

// narrow applies the filter and sort to search results. Featured order keeps
// relevance order for scored results.
func narrow(results []search.Result, q filter.Query) []search.Result {
	kept := make([]search.Result, 0, len(results))
	for _, r := range results {
		if filter.Match(r.Product, q.Category, q.State) {
			kept = append(kept, r)
		}
	}

	products := search.Products(kept)
	// Valid was checked by Compose
	_ = filter.Sort(products, q.Sort)

	scores := make(map[string]float64, len(kept))
	for _, r := range kept {
		scores[r.ID] = r.RelevanceScore
	}
	out := make([]search.Result, len(products))
	for i, p := range products {
		out[i] = search.Result{Product: p, RelevanceScore: scores[p.ID]}
	}
	return out
}
