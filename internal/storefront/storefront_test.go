package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/style-shop-backend/internal/filter"
	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/recommended"
	"github.com/wichananm65/style-shop-backend/internal/search"
	"github.com/wichananm65/style-shop-backend/internal/session"
)

type staticCatalog struct{ c *product.Catalog }

func (s staticCatalog) Catalog() *product.Catalog { return s.c }

type brokenStore struct{}

func (brokenStore) Add(context.Context, string, string) ([]string, error) {
	return nil, errors.New("store down")
}

func (brokenStore) List(context.Context, string) ([]string, error) {
	return nil, errors.New("store down")
}

type fixture struct {
	searchDelay, recDelay time.Duration
	store                 search.RecentStore
}

func (f fixture) service() *Service {
	log := slog.New(slog.DiscardHandler)
	catalog := staticCatalog{product.SeedCatalog()}
	store := f.store
	if store == nil {
		store = search.NewMemoryRecentStore(5)
	}
	return NewService(
		catalog,
		search.NewService(catalog, store, f.searchDelay, log),
		recommended.NewService(rand.New(rand.NewPCG(1, 2)), f.recDelay),
		nil,
		log,
	)
}

func defaultQuery() filter.Query {
	return filter.Query{Category: filter.All, State: filter.DefaultState(), Sort: filter.SortFeatured}
}

func pageIDs(p Page) []string {
	out := make([]string, 0, len(p.Products))
	for _, r := range p.Products {
		out = append(out, r.ID)
	}
	return out
}

func TestCompose_BrowseAll(t *testing.T) {
	page, err := fixture{}.service().Compose(context.Background(), Request{SessionID: "s1", Filter: defaultQuery()})
	require.NoError(t, err)

	assert.False(t, page.Scored)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, pageIDs(page))
	assert.Equal(t, 8, page.TotalProducts)
	assert.Len(t, page.Recommendations, recommended.Count)
	assert.Empty(t, page.RecentSearches)
	assert.Empty(t, page.FailedPanels)
	assert.Equal(t, filter.All, page.Facets.Categories[0])
}

func TestCompose_SearchThenFilterThenSort(t *testing.T) {
	svc := fixture{}.service()
	q := defaultQuery()
	q.State.PriceRange[1] = 80
	q.Sort = filter.SortPriceAsc

	// "black" matches 1,2,3,4,6,8 on color; the price cap drops 2
	page, err := svc.Compose(context.Background(), Request{SessionID: "s1", Query: "black", Filter: q})
	require.NoError(t, err)
	assert.True(t, page.Scored)
	assert.Equal(t, []string{"1", "8", "6", "4", "3"}, pageIDs(page))
	assert.Equal(t, []string{"black"}, page.RecentSearches)
}

func TestCompose_FeaturedKeepsRelevanceOrder(t *testing.T) {
	page, err := fixture{}.service().Compose(context.Background(), Request{SessionID: "s1", Query: "premium", Filter: defaultQuery()})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pageIDs(page))
	assert.Equal(t, 0.8, page.Products[0].RelevanceScore)
	assert.Equal(t, 0.1, page.Products[1].RelevanceScore)
}

func TestCompose_PanelsFailIndependently(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// search is instant, recommendations outlive the deadline
	page, err := fixture{recDelay: time.Hour}.service().Compose(ctx, Request{SessionID: "s1", Query: "denim", Filter: defaultQuery()})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, pageIDs(page))
	assert.Equal(t, []string{PanelRecommendations}, page.FailedPanels)
	assert.NotNil(t, page.Recommendations)
	assert.Empty(t, page.Recommendations)
}

func TestCompose_RecentStoreDown(t *testing.T) {
	page, err := fixture{store: brokenStore{}}.service().Compose(context.Background(), Request{SessionID: "s1", Query: "denim", Filter: defaultQuery()})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, pageIDs(page))
	assert.Equal(t, []string{PanelRecentSearches}, page.FailedPanels)
}

func TestCompose_UnknownSort(t *testing.T) {
	q := defaultQuery()
	q.Sort = "cheapest"
	_, err := fixture{}.service().Compose(context.Background(), Request{Filter: q})
	assert.ErrorIs(t, err, filter.ErrUnknownSort)
}

func TestHandler(t *testing.T) {
	app := fiber.New()
	app.Use(session.New())
	NewHandler(fixture{}.service()).RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/storefront?category=Pants", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(session.Header))

	var page Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, []string{"4"}, pageIDs(page))
	assert.Equal(t, "Pants", page.Category)

	for _, target := range []string{"/api/v1/storefront?sort=random", "/api/v1/storefront?maxPrice=lots"} {
		resp, err = app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}
