package favorite

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/session"
)

// Handler delegates favorite operations to the favorite service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/favorites", h.getFavorites)
	app.Post("/api/v1/favorites", h.addFavorite)
	app.Delete("/api/v1/favorites", h.removeFavorite)
	app.Post("/api/v1/favorites/toggle", h.toggleFavorite)
}

type favoriteRequest struct {
	ProductID string `json:"productId"`
}

func parseRequest(c *fiber.Ctx) (string, error) {
	payload := new(favoriteRequest)
	if err := c.BodyParser(payload); err != nil {
		return "", err
	}
	if payload.ProductID == "" {
		return "", errors.New("invalid productId")
	}
	return payload.ProductID, nil
}

func (h *Handler) addFavorite(c *fiber.Ctx) error {
	productID, err := parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids, err := h.service.Add(session.FromCtx(c), productID)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case errors.Is(err, ErrAlreadyFavorite):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product already in favorites"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"productId": productID, "favoriteProductIds": ids})
}

func (h *Handler) removeFavorite(c *fiber.Ctx) error {
	productID, err := parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids, err := h.service.Remove(session.FromCtx(c), productID)
	if err != nil {
		if errors.Is(err, ErrNotFavorite) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not in favorites"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"productId": productID, "favoriteProductIds": ids})
}

func (h *Handler) toggleFavorite(c *fiber.Ctx) error {
	productID, err := parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids, added, err := h.service.Toggle(session.FromCtx(c), productID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(fiber.Map{"productId": productID, "favorite": added, "favoriteProductIds": ids})
}

func (h *Handler) getFavorites(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)
	return c.JSON(fiber.Map{
		"favoriteProductIds": h.service.List(sessionID),
		"products":           h.service.Products(sessionID),
	})
}
