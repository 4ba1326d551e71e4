package style

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/style-shop-backend/internal/product"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/:id/outfit", h.getOutfit)
	app.Get("/api/v1/product/:id/size", h.getSize)
	app.Get("/api/v1/product/:id/price-trend", h.getPriceTrend)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
}

// getOutfit answers with an empty list when the suggestion call fails so the
// outfit panel just shows nothing.
func (h *Handler) getOutfit(c *fiber.Ctx) error {
	items, err := h.service.Outfits(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return notFound(c)
		}
		h.log.Error("outfit suggestions", "id", c.Params("id"), "err", err)
		return c.JSON([]OutfitItem{})
	}
	return c.JSON(items)
}

func (h *Handler) getSize(c *fiber.Ctx) error {
	rec, err := h.service.SizeRecommendation(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return notFound(c)
		}
		h.log.Error("size recommendation", "id", c.Params("id"), "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(rec)
}

func (h *Handler) getPriceTrend(c *fiber.Ctx) error {
	trend, err := h.service.PriceTrend(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return notFound(c)
		}
		h.log.Error("price trend", "id", c.Params("id"), "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(trend)
}
