package product

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/facets", h.getFacets)
	app.Get("/api/v1/product/:id", h.getProduct)
}

// RegisterAdminRoutes registers catalog write endpoints. main only calls it
// when ALLOW_RESET_PRODUCTS=1.
func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/product/:id", h.updateProduct)
	app.Delete("/api/v1/product/:id", h.deleteProduct)
	app.Post("/dev/reset-products", h.resetProducts)
}

func (h *Handler) getFacets(c *fiber.Ctx) error {
	return c.JSON(h.service.Catalog().Facets())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

// resetProducts replaces the catalog with the posted list, or with the seed
// collection when the body is not a product array. An explicit empty array
// clears the catalog.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	var products []Product
	if err := c.BodyParser(&products); err != nil {
		products = SeedProducts()
	}
	for i := range products {
		if ves := Validate(products[i]); len(ves) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "errors": ves})
		}
	}

	if err := h.service.ResetProducts(products); err != nil {
		h.log.Error("reset products", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	h.log.Info("catalog reset", "products", len(products))
	return c.JSON(h.service.List())
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// validate payload and return all validation errors together
	if ves := Validate(*p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		h.log.Error("create product", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := Validate(*p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.Params("id"), *p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		h.log.Error("update product", "id", c.Params("id"), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		h.log.Error("delete product", "id", c.Params("id"), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
