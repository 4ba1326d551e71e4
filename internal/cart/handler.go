package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/session"
)

// Handler delegates cart operations to the cart service.
// This keeps cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Patch("/api/v1/cart", h.updateQuantity)
	app.Delete("/api/v1/cart/item", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type cartRequest struct {
	Line
	Quantity *int `json:"quantity,omitempty"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, product.ErrNotFound), errors.Is(err, ErrLineNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidVariant), errors.Is(err, ErrInvalidQuantity):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Get(session.FromCtx(c)))
}

// addToCart adds one unit unless a quantity is given.
func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	summary, err := h.service.Add(session.FromCtx(c), payload.ProductID, payload.Size, payload.Color, qty)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity is required"})
	}

	summary, err := h.service.UpdateQuantity(session.FromCtx(c), payload.Line, *payload.Quantity)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

// removeItem reads the line from the query string:
// DELETE /api/v1/cart/item?productId=1&size=M&color=Black
func (h *Handler) removeItem(c *fiber.Ctx) error {
	l := Line{ProductID: c.Query("productId"), Size: c.Query("size"), Color: c.Query("color")}
	summary, err := h.service.Remove(session.FromCtx(c), l)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear(session.FromCtx(c))
	return c.SendStatus(fiber.StatusNoContent)
}
