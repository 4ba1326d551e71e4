package search

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/style-shop-backend/internal/product"
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

func newService(store RecentStore, delay time.Duration) *Service {
	return NewService(staticCatalog{product.SeedCatalog()}, store, delay, slog.New(slog.DiscardHandler))
}

func TestSearch_RecordsRecent(t *testing.T) {
	store := NewMemoryRecentStore(5)
	svc := newService(store, 0)
	ctx := context.Background()

	results, scored, err := svc.Search(ctx, "s1", "denim")
	require.NoError(t, err)
	assert.True(t, scored)
	assert.Equal(t, []string{"2"}, resultIDs(results))

	_, _, err = svc.Search(ctx, "s1", "navy")
	require.NoError(t, err)
	recent, err := svc.Recent(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"navy", "denim"}, recent)
}

func TestSearch_BlankQuerySkipsDelayAndRecord(t *testing.T) {
	store := NewMemoryRecentStore(5)
	svc := newService(store, time.Hour)

	results, scored, err := svc.Search(context.Background(), "s1", "  ")
	require.NoError(t, err)
	assert.False(t, scored)
	assert.Len(t, results, 8)

	recent, _ := store.List(context.Background(), "s1")
	assert.Empty(t, recent)
}

func TestSearch_CancelledRecordsNothing(t *testing.T) {
	store := NewMemoryRecentStore(5)
	svc := newService(store, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, _, err := svc.Search(ctx, "s1", "denim")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	recent, _ := store.List(context.Background(), "s1")
	assert.Empty(t, recent)
}

func TestSearch_StoreFailureIsNotFatal(t *testing.T) {
	svc := newService(brokenStore{}, 0)
	results, _, err := svc.Search(context.Background(), "s1", "denim")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	app.Use(session.New())
	NewHandler(svc, slog.New(slog.DiscardHandler)).RegisterPublicRoutes(app)
	return app
}

func TestHandler_SearchAndRecent(t *testing.T) {
	app := newTestApp(newService(NewMemoryRecentStore(5), 0))

	req := httptest.NewRequest("GET", "/api/v1/search?q=denim", nil)
	req.Header.Set(session.Header, "s1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Query   string   `json:"query"`
		Scored  bool     `json:"scored"`
		Results []Result `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "denim", body.Query)
	assert.True(t, body.Scored)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "2", body.Results[0].ID)
	assert.Equal(t, 0.8, body.Results[0].RelevanceScore)

	req = httptest.NewRequest("GET", "/api/v1/search/recent", nil)
	req.Header.Set(session.Header, "s1")
	resp, err = app.Test(req)
	require.NoError(t, err)
	var recent []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recent))
	assert.Equal(t, []string{"denim"}, recent)
}

func TestHandler_SearchFailureIsEmptyPanel(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})
	NewHandler(newService(NewMemoryRecentStore(5), time.Second), slog.New(slog.DiscardHandler)).RegisterPublicRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?q=denim", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []any{}, body["results"])
	assert.Equal(t, false, body["scored"])
	assert.NotEmpty(t, body["error"])
}

func TestHandler_RecentStoreDownIsEmptyList(t *testing.T) {
	app := newTestApp(newService(brokenStore{}, 0))
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search/recent", nil))
	require.NoError(t, err)
	var recent []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recent))
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}

func TestHandler_Suggestions(t *testing.T) {
	app := newTestApp(newService(NewMemoryRecentStore(5), 0))
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search/suggestions?q=cozy", nil))
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, []string{"cozy winter sweaters"}, got)
}

func TestHandler_RecentSearchesPerSession(t *testing.T) {
	store := NewMemoryRecentStore(5)
	app := newTestApp(newService(store, 0))

	get := func(sessionID, target string) *http.Response {
		t.Helper()
		req := httptest.NewRequest("GET", target, nil)
		req.Header.Set(session.Header, sessionID)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}
	recentOf := func(sessionID string) []string {
		t.Helper()
		var recent []string
		require.NoError(t, json.NewDecoder(get(sessionID, "/api/v1/search/recent").Body).Decode(&recent))
		return recent
	}

	get("alice", "/api/v1/search?q=denim")
	// same lengths as alice's id and query so the request buffers line up
	for i := 0; i < 50; i++ {
		get("zzzzz", "/api/v1/search?q=xxxxx")
	}

	assert.Equal(t, []string{"denim"}, recentOf("alice"))
	assert.Equal(t, []string{"xxxxx"}, recentOf("zzzzz"))
	assert.Equal(t, 2, store.Len())
}
