package style

import (
	"context"
	"sync"

	"github.com/wichananm65/style-shop-backend/internal/config"
	"github.com/wichananm65/style-shop-backend/internal/latency"
	"github.com/wichananm65/style-shop-backend/internal/product"
)

// Rand is the random source behind the mocked assistant answers.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Catalog() *product.Catalog
}

var standardSizes = []string{"XS", "S", "M", "L", "XL"}

type SizeRecommendation struct {
	RecommendedSize string   `json:"recommendedSize"`
	Confidence      float64  `json:"confidence"`
	FitPrediction   string   `json:"fitPrediction"`
	Alternatives    []string `json:"alternatives"`
}

type PriceTrend struct {
	CurrentPrice   float64 `json:"currentPrice"`
	PredictedPrice float64 `json:"predictedPrice"`
	Trend          string  `json:"trend"`
	Confidence     float64 `json:"confidence"`
	Recommendation string  `json:"recommendation"`
}

type Service struct {
	catalog CatalogSource
	delays  config.Delays

	mu  sync.Mutex
	rng Rand
}

func NewService(catalog CatalogSource, rng Rand, delays config.Delays) *Service {
	return &Service{catalog: catalog, rng: rng, delays: delays}
}

func (s *Service) lookup(productID string) (product.Product, error) {
	p, ok := s.catalog.Catalog().ByID(productID)
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	return p, nil
}

// Outfits suggests items to wear with the given product after the outfit
// delay.
func (s *Service) Outfits(ctx context.Context, productID string) ([]OutfitItem, error) {
	c := s.catalog.Catalog()
	base, ok := c.ByID(productID)
	if !ok {
		return nil, product.ErrNotFound
	}
	if err := latency.Wait(ctx, s.delays.Outfit); err != nil {
		return nil, err
	}
	return Outfits(base, c.Products()), nil
}

// SizeRecommendation returns a mocked size suggestion for the product.
func (s *Service) SizeRecommendation(ctx context.Context, productID string) (SizeRecommendation, error) {
	if _, err := s.lookup(productID); err != nil {
		return SizeRecommendation{}, err
	}
	if err := latency.Wait(ctx, s.delays.Size); err != nil {
		return SizeRecommendation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	size := standardSizes[s.rng.IntN(len(standardSizes))]
	rec := SizeRecommendation{
		RecommendedSize: size,
		Confidence:      s.rng.Float64()*0.3 + 0.7,
		FitPrediction:   pick(s.rng, "perfect", "slightly_loose"),
		Alternatives:    make([]string, 0, 2),
	}
	for _, alt := range standardSizes {
		if alt != size && len(rec.Alternatives) < 2 {
			rec.Alternatives = append(rec.Alternatives, alt)
		}
	}
	return rec, nil
}

// PriceTrend returns a mocked price forecast for the product.
func (s *Service) PriceTrend(ctx context.Context, productID string) (PriceTrend, error) {
	if _, err := s.lookup(productID); err != nil {
		return PriceTrend{}, err
	}
	if err := latency.Wait(ctx, s.delays.PriceTrend); err != nil {
		return PriceTrend{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return PriceTrend{
		CurrentPrice:   s.rng.Float64()*100 + 20,
		PredictedPrice: s.rng.Float64()*100 + 20,
		Trend:          pick(s.rng, "increasing", "decreasing"),
		Confidence:     s.rng.Float64()*0.3 + 0.7,
		Recommendation: pick(s.rng, "buy_now", "wait"),
	}, nil
}

// pick returns a when a fair coin lands above one half.
func pick(rng Rand, a, b string) string {
	if rng.Float64() > 0.5 {
		return a
	}
	return b
}
