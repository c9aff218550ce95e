package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/business_management_app/cmd/docs"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/middleware"
	"github.com/SscSPs/business_management_app/internal/platform/config"
	"github.com/SscSPs/business_management_app/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	if err := setupAPIV1Routes(r, cfg, services, m); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = []string{cfg.FrontendBaseURL}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	c.AllowCredentials = true
	c.MaxAge = 12 * time.Hour
	return c
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	m *metrics.Metrics,
) error {
	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1",
		middleware.MetricsMiddleware(m),
		middleware.RateLimit(limiter),
		middleware.AuthMiddleware(middleware.AuthConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}),
	)

	RegisterBalanceRoutes(v1, service.Balance)
	RegisterTransactionRoutes(v1, service.Transaction, cfg.Location)
	RegisterSummaryRoutes(v1, service.Summary, cfg.Location)
	RegisterWarehouseRoutes(v1, service.Warehouse, cfg.Location)
	RegisterReportRoutes(v1, service.Report, cfg.Location)
	return nil
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
