package storefront

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/wichananm65/style-shop-backend/internal/filter"
	"github.com/wichananm65/style-shop-backend/internal/recommended"
	"github.com/wichananm65/style-shop-backend/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/storefront", h.getStorefront)
}

// getStorefront composes the page for
// GET /api/v1/storefront?q=denim&category=Jackets&sizes=M&sort=price_asc&userId=u1&viewed=1,2
func (h *Handler) getStorefront(c *fiber.Ctx) error {
	fq, err := filter.ParseQuery(func(k string) string { return c.Query(k) })
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sessionID := session.FromCtx(c)
	page, err := h.service.Compose(c.UserContext(), Request{
		SessionID: sessionID,
		UserID:    c.Query("userId", sessionID),
		Query:     utils.CopyString(c.Query("q")),
		Filter:    fq,
		Viewed:    recommended.ViewedFromQuery(c.Query("viewed")),
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(page)
}
