package recommended

import (
	"context"
	"sync"
	"time"

	"github.com/wichananm65/style-shop-backend/internal/latency"
)

// Service provides business logic for recommended items.
type Service struct {
	delay time.Duration

	mu  sync.Mutex
	gen Generator
}

func NewService(rng Rand, delay time.Duration) *Service {
	return &Service{gen: Generator{Rand: rng}, delay: delay}
}

// Recommend returns the recommendation strip after the simulated model
// latency, or ctx's error when ctx ends first.
func (s *Service) Recommend(ctx context.Context, userID string, viewed []string, prefs Preferences) ([]Item, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Generate(userID, viewed, prefs), nil
}
