package catalog

import (
	"errors"
	"strconv"

	"media-orbit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the read-only catalog endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates the catalog HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")

	api.Get("/movies", h.ListMovies)
	api.Get("/movies/:id", h.GetMovie)
	api.Get("/series", h.ListSeries)
	api.Get("/series/:id", h.GetSeries)
	api.Get("/animes", h.ListAnimes)
	api.Get("/animes/:id", h.GetAnime)
	api.Get("/games", h.ListGames)
	api.Get("/games/:id", h.GetGame)

	api.Get("/search", h.Search)
	api.Get("/trending", h.Trending)
}

// ListMovies returns a paginated movie listing.
func (h *Handler) ListMovies(c *fiber.Ctx) error {
	page, perPage := pagination(c)
	out, err := h.service.ListMovies(page, perPage)
	if err != nil {
		return h.internal(c, "List movies failed", err)
	}
	return c.JSON(out)
}

// ListSeries returns a paginated series listing.
func (h *Handler) ListSeries(c *fiber.Ctx) error {
	page, perPage := pagination(c)
	out, err := h.service.ListSeries(page, perPage)
	if err != nil {
		return h.internal(c, "List series failed", err)
	}
	return c.JSON(out)
}

// ListAnimes returns a paginated anime listing.
func (h *Handler) ListAnimes(c *fiber.Ctx) error {
	page, perPage := pagination(c)
	out, err := h.service.ListAnimes(page, perPage)
	if err != nil {
		return h.internal(c, "List animes failed", err)
	}
	return c.JSON(out)
}

// ListGames returns a paginated game listing.
func (h *Handler) ListGames(c *fiber.Ctx) error {
	page, perPage := pagination(c)
	out, err := h.service.ListGames(page, perPage)
	if err != nil {
		return h.internal(c, "List games failed", err)
	}
	return c.JSON(out)
}

// GetMovie returns one movie or 404.
func (h *Handler) GetMovie(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return notFound(c)
	}
	out, err := h.service.GetMovie(id)
	return h.respondEntry(c, out, err)
}

// GetSeries returns one series or 404.
func (h *Handler) GetSeries(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return notFound(c)
	}
	out, err := h.service.GetSeries(id)
	return h.respondEntry(c, out, err)
}

// GetAnime returns one anime or 404.
func (h *Handler) GetAnime(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return notFound(c)
	}
	out, err := h.service.GetAnime(id)
	return h.respondEntry(c, out, err)
}

// GetGame returns one game or 404.
func (h *Handler) GetGame(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return notFound(c)
	}
	out, err := h.service.GetGame(id)
	return h.respondEntry(c, out, err)
}

// Search runs a title search across every content type.
func (h *Handler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing query parameter q"})
	}

	items, err := h.service.Search(query)
	if err != nil {
		return h.internal(c, "Search failed", err)
	}
	return c.JSON(fiber.Map{"results": items})
}

// Trending returns the top-rated mix across content types.
func (h *Handler) Trending(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	items, err := h.service.Trending(limit)
	if err != nil {
		return h.internal(c, "Trending failed", err)
	}
	return c.JSON(fiber.Map{"results": items})
}

func (h *Handler) respondEntry(c *fiber.Ctx, entry any, err error) error {
	if errors.Is(err, ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return h.internal(c, "Entry lookup failed", err)
	}
	return c.JSON(entry)
}

func (h *Handler) internal(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
}

func pagination(c *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	return page, perPage
}

func entryID(c *fiber.Ctx) (uint, error) {
	raw, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
