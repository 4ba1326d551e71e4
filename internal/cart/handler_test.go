package cart

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/session"
)

type staticCatalog struct{ c *product.Catalog }

func (s staticCatalog) Catalog() *product.Catalog { return s.c }

func makeAppWithCartHandler(cHandler *Handler) *fiber.App {
	app := fiber.New()
	app.Use(session.New())
	cHandler.RegisterPublicRoutes(app)
	return app
}

func newCartApp() *fiber.App {
	svc := NewService(NewInMemoryRepository(), staticCatalog{product.SeedCatalog()})
	return makeAppWithCartHandler(NewHandler(svc))
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, Summary) {
	t.Helper()
	return doJSONAs(t, app, "shopper", method, target, body)
}

func doJSONAs(t *testing.T, app *fiber.App, sessionID, method, target, body string) (int, Summary) {
	t.Helper()
	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(session.Header, sessionID)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	var s Summary
	if res.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&s); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res.StatusCode, s
}

func TestCartRoutes_Registered(t *testing.T) {
	app := newCartApp()

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{
		"GET /api/v1/cart",
		"POST /api/v1/cart",
		"PATCH /api/v1/cart",
		"DELETE /api/v1/cart",
		"DELETE /api/v1/cart/item",
	} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}
}

func TestCartRoutes_Flow(t *testing.T) {
	app := newCartApp()

	status, s := doJSON(t, app, "GET", "/api/v1/cart", "")
	if status != fiber.StatusOK || s.TotalItems != 0 {
		t.Fatalf("expected empty cart, got %d %+v", status, s)
	}

	status, s = doJSON(t, app, "POST", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue"}`)
	if status != fiber.StatusOK || s.TotalItems != 1 {
		t.Fatalf("expected one item, got %d %+v", status, s)
	}
	status, s = doJSON(t, app, "POST", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue","quantity":2}`)
	if status != fiber.StatusOK || s.TotalItems != 3 || len(s.Items) != 1 {
		t.Fatalf("expected merged line of 3, got %d %+v", status, s)
	}
	if s.Items[0].Product.Name != "Classic Denim Jacket" {
		t.Fatalf("line must carry the product, got %+v", s.Items[0].Product)
	}

	status, s = doJSON(t, app, "PATCH", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue","quantity":1}`)
	if status != fiber.StatusOK || s.TotalItems != 1 {
		t.Fatalf("expected quantity 1, got %d %+v", status, s)
	}

	status, s = doJSON(t, app, "DELETE", "/api/v1/cart/item?productId=2&size=M&color=Blue", "")
	if status != fiber.StatusOK || len(s.Items) != 0 {
		t.Fatalf("expected empty cart after remove, got %d %+v", status, s)
	}

	doJSON(t, app, "POST", "/api/v1/cart", `{"productId":"1","size":"S","color":"Navy"}`)
	status, _ = doJSON(t, app, "DELETE", "/api/v1/cart", "")
	if status != fiber.StatusNoContent {
		t.Fatalf("expected 204 on clear, got %d", status)
	}
}

func TestCartRoutes_Errors(t *testing.T) {
	app := newCartApp()

	cases := []struct {
		method, target, body string
		want                 int
	}{
		{"POST", "/api/v1/cart", `{"size":"M","color":"Blue"}`, fiber.StatusBadRequest},
		{"POST", "/api/v1/cart", `{"productId":"99","size":"M","color":"Blue"}`, fiber.StatusNotFound},
		{"POST", "/api/v1/cart", `{"productId":"2","size":"XS","color":"Blue"}`, fiber.StatusBadRequest},
		{"POST", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue","quantity":-1}`, fiber.StatusBadRequest},
		{"PATCH", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue"}`, fiber.StatusBadRequest},
		{"PATCH", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue","quantity":4}`, fiber.StatusNotFound},
		{"DELETE", "/api/v1/cart/item?productId=2&size=M&color=Blue", "", fiber.StatusNotFound},
	}
	for _, tc := range cases {
		if status, _ := doJSON(t, app, tc.method, tc.target, tc.body); status != tc.want {
			t.Fatalf("%s %s %s: expected %d, got %d", tc.method, tc.target, tc.body, tc.want, status)
		}
	}
}

func TestCartRoutes_SessionsStayIsolated(t *testing.T) {
	app := newCartApp()

	status, _ := doJSONAs(t, app, "alice", "POST", "/api/v1/cart", `{"productId":"2","size":"M","color":"Blue"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on add, got %d", status)
	}

	// same-length ids reuse the request buffer slot alice's id was read from
	for i := 0; i < 20; i++ {
		status, s := doJSONAs(t, app, "bobby", "GET", "/api/v1/cart", "")
		if status != fiber.StatusOK || s.TotalItems != 0 {
			t.Fatalf("bobby must see an empty cart, got %d %+v", status, s)
		}
	}
	doJSONAs(t, app, "bobby", "POST", "/api/v1/cart", `{"productId":"1","size":"S","color":"Navy","quantity":2}`)

	status, s := doJSONAs(t, app, "alice", "GET", "/api/v1/cart", "")
	if status != fiber.StatusOK || s.TotalItems != 1 || len(s.Items) != 1 || s.Items[0].Product.ID != "2" {
		t.Fatalf("alice's cart changed, got %d %+v", status, s)
	}
	_, s = doJSONAs(t, app, "bobby", "GET", "/api/v1/cart", "")
	if s.TotalItems != 2 || s.Items[0].Product.ID != "1" {
		t.Fatalf("unexpected cart for bobby %+v", s)
	}
}
