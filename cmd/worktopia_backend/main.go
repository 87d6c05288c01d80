package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/Sachin796/Worktopia/internal/adapters/geocoding"
	"github.com/Sachin796/Worktopia/internal/adapters/queue"
	"github.com/Sachin796/Worktopia/internal/core/services"
	"github.com/Sachin796/Worktopia/internal/handlers"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/Sachin796/Worktopia/internal/platform/config"
	"github.com/Sachin796/Worktopia/internal/platform/metrics"
	"github.com/Sachin796/Worktopia/internal/repositories/cache"
	"github.com/Sachin796/Worktopia/internal/repositories/database/pgsql"
	"github.com/Sachin796/Worktopia/internal/utils"
	"github.com/Sachin796/Worktopia/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Worktopia API
// @version 1.0
// @description Coworking workspace listings, bookings and search.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps, cleanup := buildDependencies(ctx, cfg, logger)
	defer cleanup()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	metrics.Register()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, deps)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.SessionHeader)
	corsCfg.ExposeHeaders = []string{middleware.SessionHeader, "X-Request-ID"}

	r.Use(
		cors.New(corsCfg),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}
	if sourceErr, dbErr := m.Close(); sourceErr != nil {
		return sourceErr
	} else if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildDependencies wires Redis, RabbitMQ and the geocoder. Redis is optional: without it search
// state lives in memory and blocked days are not cached.
func buildDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (services.Dependencies, func()) {
	deps := services.Dependencies{
		Publisher: queue.NewPublisher(cfg.RabbitMQURL),
	}
	cleanup := func() {}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err == nil {
			err = cache.Ping(ctx, client)
		}
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory session store", slog.String("error", err.Error()))
			if client != nil {
				_ = cache.Close(client)
			}
		} else {
			redisClient = client
			cleanup = func() {
				if err := cache.Close(client); err != nil {
					logger.Error("Error closing Redis client", slog.String("error", err.Error()))
				}
			}
		}
	}

	if redisClient != nil {
		deps.Store = cache.NewRedisSessionStore(redisClient, cfg.SearchParamsTTL)
		deps.Cache = cache.NewRedisBlockedDaysCache(redisClient, cfg.BlockedDaysCacheTTL)
	} else {
		deps.Store = cache.NewMemoryStore()
	}

	if cfg.GeocoderKey != "" {
		deps.Geocoder = geocoding.NewClient(cfg.GeocoderURL, cfg.GeocoderKey)
	} else {
		logger.Warn("GEOCODER_KEY not set. Reviews will not show map pins.")
	}

	return deps, cleanup
}
