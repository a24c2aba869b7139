package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/cashflow_dashboard/internal/core/services"
	"github.com/SscSPs/cashflow_dashboard/internal/handlers"
	"github.com/SscSPs/cashflow_dashboard/internal/middleware"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Cash Flow Dashboard API
// @version 1.0
// @description Cash-flow analysis for small businesses: runway, burn, health score, alerts and forecasts.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(cfg)

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.Int("history_months", cfg.HistoryMonths),
		slog.Int("min_runway_months", cfg.MinRunwayMonths))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
