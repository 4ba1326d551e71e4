package recommended

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/style-shop-backend/internal/session"
)

// ViewedSource supplies the product ids a session has interacted with when
// the client does not send its own viewed list.
type ViewedSource interface {
	ProductIDs(sessionID string) []string
}

type Handler struct {
	service *Service
	viewed  ViewedSource
	log     *slog.Logger
}

func NewHandler(s *Service, viewed ViewedSource, log *slog.Logger) *Handler {
	return &Handler{service: s, viewed: viewed, log: log}
}

// RegisterPublicRoutes must run before the product routes so that
// "recommended" is not taken as a product id.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/recommended", h.getRecommended)
}

// getRecommended supports ?userId=u1&viewed=1,2. A failed call is an empty
// strip, never an error response.
func (h *Handler) getRecommended(c *fiber.Ctx) error {
	sessionID := session.FromCtx(c)
	userID := c.Query("userId", sessionID)
	viewed := ViewedFromQuery(c.Query("viewed"))
	if viewed == nil && h.viewed != nil {
		viewed = h.viewed.ProductIDs(sessionID)
	}

	items, err := h.service.Recommend(c.UserContext(), userID, viewed, nil)
	if err != nil {
		h.log.Error("recommendations", "user", userID, "err", err)
		return c.JSON([]Item{})
	}
	return c.JSON(items)
}

// ViewedFromQuery splits a comma separated id list. An empty value is nil.
func ViewedFromQuery(raw string) []string {
	var out []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
