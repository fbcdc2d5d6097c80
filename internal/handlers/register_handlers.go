package handlers

import (
	"net/http"

	"github.com/SscSPs/adops_erp/cmd/docs"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/SscSPs/adops_erp/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter may be nil to disable rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	handlers := []gin.HandlerFunc{}
	if rateLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(rateLimiter))
	}
	handlers = append(handlers, middleware.AuthMiddleware(cfg.JWTSecret))
	v1 := r.Group("/api/v1", handlers...)

	company := v1.Group("/companies/:company_id")
	RegisterVoucherRoutes(company, services.Voucher, services.Auxiliary)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
