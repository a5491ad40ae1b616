package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/service"
)

const fixtureCSV = `title,year,rating,genres,directors,stars,duration
The Shawshank Redemption,1994,9.3,Drama,Frank Darabont,"Tim Robbins, Morgan Freeman",2h 22m
The Godfather,1972,9.2,"Crime, Drama",Francis Ford Coppola,"Marlon Brando, Al Pacino",2h 55m
The Dark Knight,2008,9.0,"Action, Crime, Drama",Christopher Nolan,"Christian Bale, Heath Ledger",2h 32m
The Matrix,1999,8.7,"Action, Sci-Fi","Lana Wachowski, Lilly Wachowski",Keanu Reeves,2h 16m
Inception,2010,8.8,"Action, Adventure, Sci-Fi",Christopher Nolan,Leonardo DiCaprio,2h 28m
`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(fixtureCSV))
	require.NoError(t, err)

	svc := service.NewExplorerService(cat, nil)
	movies := NewMovieHandler(svc)
	stats := NewAnalyticsHandler(svc)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/health", movies.Health)
	api.Get("/movies", movies.SearchMovies)
	api.Get("/movies/export", movies.ExportSearch)
	api.Get("/movies/compare", movies.CompareMovies)
	api.Post("/recommendations", movies.Recommend)
	api.Get("/catalog/titles", movies.SuggestTitles)
	api.Get("/catalog/:field", movies.FieldDomain)
	api.Get("/analytics/overview", stats.Overview)
	api.Get("/lists/top", stats.TopRated)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSearchMovies(t *testing.T) {
	app := newTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/v1/movies?genre=Sci-Fi&min_rating=8.8", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.TotalMatches)
	assert.Equal(t, "Inception", body.Movies[0].Title)
}

func TestRecommend(t *testing.T) {
	app := newTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/v1/recommendations?limit=2",
		`{"mood":"tense","min_rating":8.9}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.RecommendationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.TotalMatches)
	require.Len(t, body.Movies, 2)
	assert.Equal(t, "The Godfather", body.Movies[0].Title)
}

func TestRecommendRejectsUnknownMood(t *testing.T) {
	app := newTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/v1/recommendations", `{"mood":"grumpy"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompareMovies(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet,
		"/api/v1/movies/compare?title=The+Matrix&title=Inception", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet,
		"/api/v1/movies/compare?title=The+Matrix&title=Unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/movies/compare?title=The+Matrix", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportSearchIsCSV(t *testing.T) {
	app := newTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/v1/movies/export?genre=Drama", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

func TestFieldDomain(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/catalog/genres", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/catalog/bogus", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTopList(t *testing.T) {
	app := newTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/v1/lists/top?limit=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Movies []models.Movie `json:"movies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Movies, 2)
	assert.Equal(t, "The Shawshank Redemption", body.Movies[0].Title)
}
