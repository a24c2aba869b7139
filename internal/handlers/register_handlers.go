package handlers

import (
	"log/slog"

	"github.com/SscSPs/cashflow_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/middleware"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the rate limited /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	slog.Info("Rate limiting enabled", slog.String("rate", cfg.RateLimit))

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))
	RegisterDashboardRoutes(v1, services.Dashboard)
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
