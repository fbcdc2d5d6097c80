package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	LogLevel       string
	MigrationsPath string

	CORSAllowedOrigins []string

	// RateLimit uses the limiter format, e.g. "100-M" for 100 requests a minute.
	RateLimit string
	// RedisURL backs the rate limiter store when set; otherwise limits are per instance.
	RedisURL string

	StorageMaxRetries int
	StorageRetryBase  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("STORAGE_MAX_RETRIES", 4)
	viper.SetDefault("STORAGE_RETRY_BASE", "50ms")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		// cors.New panics when no origin is allowed
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.StorageMaxRetries = viper.GetInt("STORAGE_MAX_RETRIES")
	if cfg.StorageMaxRetries < 1 {
		log.Printf("Warning: Invalid value for STORAGE_MAX_RETRIES (%d). Defaulting to 4.\n", cfg.StorageMaxRetries)
		cfg.StorageMaxRetries = 4
	}

	retryBaseStr := viper.GetString("STORAGE_RETRY_BASE")
	retryBase, err := time.ParseDuration(retryBaseStr)
	if err != nil || retryBase < 0 {
		retryBase = 50 * time.Millisecond
		log.Printf("Warning: Invalid value for STORAGE_RETRY_BASE ('%s'). Defaulting to %s.\n", retryBaseStr, retryBase)
	}
	cfg.StorageRetryBase = retryBase

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
