package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rankio/rankio-api/internal/api/handler"
	"github.com/rankio/rankio-api/internal/api/middleware"
	"github.com/rankio/rankio-api/internal/core/service"
	"github.com/rankio/rankio-api/internal/infrastructure/config"
	mongodb "github.com/rankio/rankio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rankio/rankio-api/internal/infrastructure/db/redis"
	"github.com/rankio/rankio-api/internal/infrastructure/metadata"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The module has no process entry point of its own; the surrounding
// application connects the stores, loads config, and mounts this router.
func NewRouter(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	profileRepo := mongodb.NewProfileRepository(client, db)
	reviewRepo := mongodb.NewReviewRepository(db)
	movieCache := redisdb.NewMovieCache(rdb)
	provider := metadata.NewClient(metadata.Config{
		BaseURL: cfg.Metadata.BaseURL,
		APIKey:  cfg.Metadata.APIKey,
		Timeout: cfg.Metadata.Timeout,
	}, log)

	profileService := service.NewProfileService(profileRepo, log)
	availability := service.NewAvailabilityChecker(profileRepo, cfg.DebounceWindow, nil, log)
	movieService := service.NewMovieService(provider, movieCache, log)
	reviewService := service.NewReviewService(reviewRepo, profileRepo, movieService, log)

	profileHandler := handler.NewProfileHandler(profileService, availability)
	reviewHandler := handler.NewReviewHandler(reviewService)
	movieHandler := handler.NewMovieHandler(movieService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.GET("/v1/profiles/:handle", profileHandler.Get)
	e.GET("/v1/movies/:id", movieHandler.Get)
	e.GET("/v1/reviews/:id", reviewHandler.Get)
	e.GET("/v1/users/:handle/reviews", reviewHandler.ListByAuthor)

	// --- Authenticated routes ---
	e.GET("/v1/handles/:handle/availability", profileHandler.Availability, authMiddleware)
	e.POST("/v1/profiles", profileHandler.Create, authMiddleware)
	e.POST("/v1/reviews", reviewHandler.Create, authMiddleware)
	e.PUT("/v1/reviews/:id", reviewHandler.Update, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
