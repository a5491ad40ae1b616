package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/service"
)

// MovieHandler handles HTTP requests for search, recommendations,
// comparison and catalog lookups.
type MovieHandler struct {
	svc *service.ExplorerService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.ExplorerService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-explorer-service",
		"movies":  h.svc.Catalog().Len(),
	})
}

// SearchMovies runs an ad hoc catalog search.
// @Summary Search movies
// @Tags movies
// @Produce json
// @Param genre query []string false "Genre filter (repeatable, match any)"
// @Param year_from query int false "Inclusive lower year bound"
// @Param year_to query int false "Inclusive upper year bound"
// @Param min_rating query number false "Minimum rating"
// @Param q query string false "Substring matched against title, directors and stars"
// @Param sort_by query string false "Sort field" Enums(rating,year,title) default(rating)
// @Param order query string false "Sort order" Enums(asc,desc) default(desc)
// @Param limit query int false "Maximum results (0 = all)"
// @Success 200 {object} models.SearchResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies [get]
func (h *MovieHandler) SearchMovies(c fiber.Ctx) error {
	q := freeQueryFromParams(c)
	sortBy := c.Query("sort_by", "rating")
	order := c.Query("order", "desc")
	limit := fiber.Query(c, "limit", 0)

	resp, err := h.svc.RunFreeQuery(q, sortBy, order, limit)
	if err != nil {
		slog.Error("failed to search movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to search movies",
		})
	}
	return c.JSON(resp)
}

// ExportSearch downloads the full search result set as CSV.
// @Summary Export search results as CSV
// @Tags movies
// @Produce text/csv
// @Success 200 {string} string
// @Failure 500 {object} ErrorResponse
// @Router /movies/export [get]
func (h *MovieHandler) ExportSearch(c fiber.Ctx) error {
	q := freeQueryFromParams(c)
	matched := h.svc.FreeQueryMatches(q, c.Query("sort_by", "rating"), c.Query("order", "desc"))

	data, err := service.ExportCSV(matched)
	if err != nil {
		slog.Error("failed to export search results", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to export results",
		})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="filtered_movies.csv"`)
	return c.Send(data)
}

// Recommend answers a preference quiz with ranked recommendations.
// @Summary Get personalized recommendations
// @Tags recommendations
// @Accept json
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Param query body models.PreferenceQuery true "Quiz answers"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} ErrorResponse
// @Router /recommendations [post]
func (h *MovieHandler) Recommend(c fiber.Ctx) error {
	var q models.PreferenceQuery
	if err := c.Bind().JSON(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if err := q.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	limit := fiber.Query(c, "limit", 10)
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	resp, err := h.svc.RunPreferenceMatch(q, limit)
	if err != nil {
		slog.Error("failed to generate recommendations", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to generate recommendations",
		})
	}
	return c.JSON(resp)
}

// ExportRecommendations downloads every quiz match as CSV.
// @Summary Export recommendations as CSV
// @Tags recommendations
// @Accept json
// @Produce text/csv
// @Param query body models.PreferenceQuery true "Quiz answers"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Router /recommendations/export [post]
func (h *MovieHandler) ExportRecommendations(c fiber.Ctx) error {
	var q models.PreferenceQuery
	if err := c.Bind().JSON(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if err := q.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	data, err := service.ExportCSV(h.svc.PreferenceMatches(q))
	if err != nil {
		slog.Error("failed to export recommendations", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to export results",
		})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="my_movie_recommendations.csv"`)
	return c.Send(data)
}

// CompareMovies returns 2 or 3 movies side by side.
// @Summary Compare movies by title
// @Tags movies
// @Produce json
// @Param title query []string true "Exact title (repeat 2 or 3 times)"
// @Success 200 {object} map[string][]models.Movie
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/compare [get]
func (h *MovieHandler) CompareMovies(c fiber.Ctx) error {
	var titles []string
	for _, v := range c.RequestCtx().QueryArgs().PeekMulti("title") {
		titles = append(titles, string(v))
	}

	movies, err := h.svc.CompareMovies(titles)
	if err != nil {
		if errors.Is(err, models.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"movies": movies})
}

// FieldDomain returns distinct values of an enumerable catalog field.
// @Summary List distinct field values
// @Tags catalog
// @Produce json
// @Param field path string true "Field name" Enums(genres,directors,stars,titles)
// @Success 200 {object} map[string][]string
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{field} [get]
func (h *MovieHandler) FieldDomain(c fiber.Ctx) error {
	field := c.Params("field")
	values, err := h.svc.FieldDomain(field)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{
		"field":  field,
		"values": values,
	})
}

// SuggestTitles returns fuzzy title suggestions for pickers.
// @Summary Suggest titles
// @Tags catalog
// @Produce json
// @Param q query string false "Partial title"
// @Param limit query int false "Maximum suggestions" default(10)
// @Success 200 {object} map[string][]string
// @Router /catalog/titles [get]
func (h *MovieHandler) SuggestTitles(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 10)
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return c.JSON(fiber.Map{
		"titles": h.svc.SuggestTitles(c.Query("q"), limit),
	})
}

// freeQueryFromParams builds a FreeQuery from request query parameters.
func freeQueryFromParams(c fiber.Ctx) models.FreeQuery {
	q := models.FreeQuery{
		YearFrom:  fiber.Query(c, "year_from", 0),
		YearTo:    fiber.Query(c, "year_to", 0),
		MinRating: fiber.Query(c, "min_rating", 0.0),
		Search:    c.Query("q"),
	}
	for _, v := range c.RequestCtx().QueryArgs().PeekMulti("genre") {
		q.Genres = append(q.Genres, string(v))
	}
	return q
}
