package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/wichananm65/style-shop-backend/internal/latency"
	"github.com/wichananm65/style-shop-backend/internal/product"
)

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Catalog() *product.Catalog
}

type Service struct {
	catalog CatalogSource
	recent  RecentStore
	delay   time.Duration
	log     *slog.Logger
}

func NewService(catalog CatalogSource, recent RecentStore, delay time.Duration, log *slog.Logger) *Service {
	return &Service{catalog: catalog, recent: recent, delay: delay, log: log}
}

// Search ranks the catalog against query after the simulated search delay.
// A blank query returns the whole catalog unscored without waiting. A
// successful non-blank search is recorded in the session's recent searches;
// a failure to record is logged only. A cancelled search records nothing.
func (s *Service) Search(ctx context.Context, sessionID, query string) ([]Result, bool, error) {
	products := s.catalog.Catalog().Products()
	if IsBlank(query) {
		results, _ := Rank(query, products)
		return results, false, nil
	}

	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, false, err
	}
	results, scored := Rank(query, products)

	if _, err := s.recent.Add(ctx, sessionID, query); err != nil {
		s.log.Warn("record recent search", "session", sessionID, "err", err)
	}
	return results, scored, nil
}

// Recent returns the session's recent searches, newest first.
func (s *Service) Recent(ctx context.Context, sessionID string) ([]string, error) {
	return s.recent.List(ctx, sessionID)
}
