package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds a limiter for a formatted rate such as "100-M".
// Counters live in redis when client is non-nil so every instance shares them,
// and in process memory otherwise.
func NewRateLimiter(formattedRate string, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formattedRate, err)
	}

	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "adops_erp_limiter",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStore()
	}
	return limiter.New(store, rate), nil
}

// RateLimit creates a Gin middleware for rate limiting requests by client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context())

		limitCtx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "error": "Internal server error during rate limit check"})
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limitCtx.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limitCtx.Remaining))

		if limitCtx.Reached {
			logger.Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", limitCtx.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": "RATE_LIMITED", "error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
