package filter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/style-shop-backend/internal/product"
)

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Catalog() *product.Catalog
}

type Handler struct {
	catalog CatalogSource
}

func NewHandler(catalog CatalogSource) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
}

// listProducts serves the filtered and sorted catalog.
// GET /api/v1/products?category=Pants&sizes=30,32&maxPrice=100&sort=price_asc
func (h *Handler) listProducts(c *fiber.Ctx) error {
	q, err := ParseQuery(func(k string) string { return c.Query(k) })
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	products := Apply(h.catalog.Catalog().Products(), q.Category, q.State)
	if err := Sort(products, q.Sort); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}
