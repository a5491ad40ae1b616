package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/config"
	"movie-explorer-service/internal/database"
	"movie-explorer-service/internal/handler"
	"movie-explorer-service/internal/service"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Load the catalog once; it is read-only for the life of the process.
	cat, err := loadCatalog(cfg)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Initialize layers
	svc := service.NewExplorerService(cat, rdb)
	movies := handler.NewMovieHandler(svc)
	stats := handler.NewAnalyticsHandler(svc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Explorer Service",
		ServerHeader: "Movie-Explorer",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", movies.Health)

	api.Get("/movies", movies.SearchMovies)
	api.Get("/movies/export", movies.ExportSearch)
	api.Get("/movies/compare", movies.CompareMovies)
	api.Post("/recommendations", movies.Recommend)
	api.Post("/recommendations/export", movies.ExportRecommendations)

	api.Get("/catalog/titles", movies.SuggestTitles)
	api.Get("/catalog/:field", movies.FieldDomain)

	api.Get("/analytics/overview", stats.Overview)
	api.Get("/analytics/genres", stats.GenreCounts)
	api.Get("/analytics/genre-combinations", stats.GenreCombos)
	api.Get("/analytics/directors", stats.DirectorStats)
	api.Get("/analytics/decades", stats.DecadeCounts)
	api.Get("/analytics/years", stats.YearCounts)
	api.Get("/analytics/ratings", stats.RatingStats)

	api.Get("/lists/top", stats.TopRated)
	api.Get("/lists/decade", stats.TopByDecade)
	api.Get("/lists/genre", stats.TopByGenre)
	api.Get("/lists/director", stats.ByDirector)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down movie explorer service...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting movie explorer service", "addr", addr, "movies", cat.Len())
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// loadCatalog builds the immutable catalog from the configured source.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Source == config.SourcePostgres {
		db, err := database.NewPostgres(cfg.DB)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.LoadPostgres(db)
	}
	return catalog.LoadCSV(cfg.Catalog.CSVPath)
}
