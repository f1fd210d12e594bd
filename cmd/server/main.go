package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/saferoute/backend/internal/delivery/http"
	"github.com/saferoute/backend/internal/repository/memory"
	"github.com/saferoute/backend/internal/repository/postgres"
	"github.com/saferoute/backend/internal/service"
)

func main() {
	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		level.Info(logger).Log("msg", "no .env file found, using system environment")
	}

	cfg := loadConfig()
	if cfg.Env == "production" {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = p.Ping(ctx)
		}
		if err != nil {
			level.Warn(logger).Log("msg", "could not connect to database, running with seed data in memory", "err", err)
			if p != nil {
				p.Close()
			}
		} else {
			pool = p
			defer pool.Close()
			level.Info(logger).Log("msg", "connected to PostgreSQL")
		}
	}

	// Dependency Injection: Repositories
	var dataRepo service.DataRepository
	if pool != nil {
		pgRepo := postgres.NewPostgresRepository(pool, logger)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			level.Error(logger).Log("msg", "schema setup failed", "err", err)
			os.Exit(1)
		}
		if cfg.SeedDatabase {
			if err := pgRepo.Seed(ctx); err != nil {
				level.Error(logger).Log("msg", "seeding failed", "err", err)
			}
		}
		dataRepo = pgRepo
	} else {
		dataRepo = memory.NewSeededRepository(memory.NewSequence(1))
	}

	// Dependency Injection: Services
	routeSvc := service.NewRouteService(dataRepo, service.RouteConfig{
		UnifiedHazardCount: cfg.UnifyHazardCount,
	}, logger)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "SafeRoute API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, routeSvc, dataRepo, logger)

	// Graceful shutdown
	go func() {
		level.Info(logger).Log("msg", "server starting", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			level.Error(logger).Log("msg", "server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	level.Info(logger).Log("msg", "shutting down server", "signal", sig)
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		level.Error(logger).Log("msg", "server forced to shutdown", "err", err)
	}
	level.Info(logger).Log("msg", "server exited gracefully")
}

type Config struct {
	DatabaseURL      string
	Port             string
	Env              string
	SeedDatabase     bool
	UnifyHazardCount bool
	CORSOrigins      string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("GO_ENV", "development"),
		SeedDatabase:     getEnvBool("SEED_DATABASE", true),
		UnifyHazardCount: getEnvBool("UNIFY_HAZARD_COUNT", false),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
