package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-explorer-service/internal/service"
)

// AnalyticsHandler handles HTTP requests for aggregate views and top lists.
type AnalyticsHandler struct {
	svc *service.ExplorerService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *service.ExplorerService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Overview returns headline catalog metrics and featured lists.
// GET /api/v1/analytics/overview
func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	return c.JSON(h.svc.Overview())
}

// GenreCounts returns genre frequencies, most common first.
// GET /api/v1/analytics/genres
func (h *AnalyticsHandler) GenreCounts(c fiber.Ctx) error {
	entries := h.svc.GenreCounts()
	limit := fiber.Query(c, "limit", 0)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return c.JSON(fiber.Map{"genres": entries})
}

// GenreCombos returns the most common exact genre combinations.
// GET /api/v1/analytics/genre-combinations
func (h *AnalyticsHandler) GenreCombos(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 10)
	return c.JSON(fiber.Map{"combinations": h.svc.GenreComboCounts(limit)})
}

// DirectorStats returns director counts and average ratings.
// GET /api/v1/analytics/directors
func (h *AnalyticsHandler) DirectorStats(c fiber.Ctx) error {
	return c.JSON(h.svc.DirectorStats())
}

// DecadeCounts returns per-decade counts and average ratings.
// GET /api/v1/analytics/decades
func (h *AnalyticsHandler) DecadeCounts(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"decades": h.svc.DecadeCounts()})
}

// YearCounts returns per-year movie counts.
// GET /api/v1/analytics/years
func (h *AnalyticsHandler) YearCounts(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"years": h.svc.YearCounts()})
}

// RatingStats returns the catalog rating distribution summary.
// GET /api/v1/analytics/ratings
func (h *AnalyticsHandler) RatingStats(c fiber.Ctx) error {
	return c.JSON(h.svc.RatingStats())
}

// TopRated returns the highest rated movies.
// GET /api/v1/lists/top
func (h *AnalyticsHandler) TopRated(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return c.JSON(fiber.Map{"movies": h.svc.TopRated(limit)})
}

// TopByDecade returns the highest rated movies of one decade.
// GET /api/v1/lists/decade?decade=1990
func (h *AnalyticsHandler) TopByDecade(c fiber.Ctx) error {
	decade, err := strconv.Atoi(c.Query("decade"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid decade"})
	}
	limit := fiber.Query(c, "limit", 10)
	return c.JSON(fiber.Map{
		"decade": decade,
		"movies": h.svc.TopByDecade(decade, limit),
	})
}

// TopByGenre returns the highest rated movies of one genre.
// GET /api/v1/lists/genre?genre=Drama
func (h *AnalyticsHandler) TopByGenre(c fiber.Ctx) error {
	genre := c.Query("genre")
	if genre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "genre is required"})
	}
	limit := fiber.Query(c, "limit", 10)
	return c.JSON(fiber.Map{
		"genre":  genre,
		"movies": h.svc.TopByGenre(genre, limit),
	})
}

// ByDirector returns every movie credited to a director, ranked.
// GET /api/v1/lists/director?name=Nolan
func (h *AnalyticsHandler) ByDirector(c fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "name is required"})
	}
	movies := h.svc.ByDirector(name)
	return c.JSON(fiber.Map{
		"director": name,
		"count":    len(movies),
		"movies":   movies,
	})
}
