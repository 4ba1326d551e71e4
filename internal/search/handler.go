package search

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/wichananm65/style-shop-backend/internal/session"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/search", h.search)
	app.Get("/api/v1/search/recent", h.recent)
	app.Get("/api/v1/search/suggestions", h.suggestions)
}

// search never fails the request. A failed search is an empty panel with
// the error message attached.
func (h *Handler) search(c *fiber.Ctx) error {
	// kept in the recent-search list after the request ends
	q := utils.CopyString(c.Query("q"))
	results, scored, err := h.service.Search(c.UserContext(), session.FromCtx(c), q)
	if err != nil {
		h.log.Error("search", "query", q, "err", err)
		return c.JSON(fiber.Map{"query": q, "scored": false, "results": []Result{}, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"query": q, "scored": scored, "results": results})
}

func (h *Handler) recent(c *fiber.Ctx) error {
	recent, err := h.service.Recent(c.UserContext(), session.FromCtx(c))
	if err != nil {
		h.log.Error("list recent searches", "err", err)
		recent = nil
	}
	if recent == nil {
		recent = []string{}
	}
	return c.JSON(recent)
}

func (h *Handler) suggestions(c *fiber.Ctx) error {
	return c.JSON(Suggestions(c.Query("q")))
}
