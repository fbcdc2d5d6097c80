package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/adops_erp/internal/core/services"
	"github.com/SscSPs/adops_erp/internal/handlers"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/SscSPs/adops_erp/internal/platform/config"
	"github.com/SscSPs/adops_erp/internal/repositories/database/pgsql"
	"github.com/SscSPs/adops_erp/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title AdOps ERP Voucher API
// @version 1.0
// @description Voucher lifecycle engine: draft creation, entry lines, balance validation and approval numbering.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient := newRedisClient(logger, cfg.RedisURL)
	if redisClient != nil {
		defer redisClient.Close()
	}
	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRedisClient connects to redis when url is set. A bad or unreachable
// redis falls back to per-instance rate limiting.
func newRedisClient(logger *slog.Logger, url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, using in-memory rate limiting", slog.String("error", err.Error()))
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, using in-memory rate limiting", slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	logger.Info("Connected to redis for rate limiting.")
	return client
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
