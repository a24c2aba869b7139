package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for cash-flow analyses
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newDashboardHandler creates a new dashboardHandler
func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// RegisterDashboardRoutes registers the analysis routes on rg
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	rg.POST("/dashboard", h.getDashboard)
	rg.POST("/what-if", h.simulateWhatIf)
	rg.POST("/forecast", h.getForecast)
}

// parseAsOf reads the optional asOf query parameter. A missing value yields
// the zero time, which tells the service to use its clock.
func parseAsOf(c *gin.Context, logger *slog.Logger) (time.Time, bool) {
	asOfStr := c.Query("asOf")
	if asOfStr == "" {
		return time.Time{}, true
	}
	asOf, err := time.Parse(dto.DateLayout, asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return asOf, true
}

// respondError maps service errors to HTTP responses
func respondError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Rejected invalid input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error(failure, slog.String("error", err.Error()))
	body := gin.H{"error": failure}
	if id, ok := middleware.GetRequestIDFromContext(c); ok {
		body["requestId"] = id
	}
	c.JSON(http.StatusInternalServerError, body)
}

// getDashboard godoc
// @Summary Compute the cash-flow dashboard
// @Description Runs every analysis (summary, health, burn, alerts, forecast, ...) over the supplied ledger in one pass
// @Tags dashboard
// @Accept json
// @Produce json
// @Param asOf query string false "Analysis date (YYYY-MM-DD)" default(current date)
// @Param request body dto.DashboardRequest true "Business profile and transactions"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate dashboard"
// @Router /dashboard [post]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseAsOf(c, logger)
	if !ok {
		return
	}

	var req dto.DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to generate dashboard", slog.Int("transaction_count", len(req.Transactions)))

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context(), req, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// simulateWhatIf godoc
// @Summary Simulate a what-if scenario
// @Description Applies hires and percentage changes to the current month and reports the new runway
// @Tags dashboard
// @Accept json
// @Produce json
// @Param asOf query string false "Analysis date (YYYY-MM-DD)" default(current date)
// @Param request body dto.WhatIfRequest true "Ledger and scenario"
// @Success 200 {object} domain.WhatIfResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to simulate scenario"
// @Router /what-if [post]
func (h *dashboardHandler) simulateWhatIf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseAsOf(c, logger)
	if !ok {
		return
	}

	var req dto.WhatIfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for WhatIf", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.dashboardService.WhatIf(c.Request.Context(), req, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to simulate scenario")
		return
	}

	c.JSON(http.StatusOK, result)
}

// getForecast godoc
// @Summary Project the cash balance
// @Description Projects current-month income and the burn rate forward month by month
// @Tags dashboard
// @Accept json
// @Produce json
// @Param asOf query string false "Analysis date (YYYY-MM-DD)" default(current date)
// @Param months query int false "Forecast horizon in months (1-60)" default(6)
// @Param request body dto.ForecastRequest true "Business profile and transactions"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate forecast"
// @Router /forecast [post]
func (h *dashboardHandler) getForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseAsOf(c, logger)
	if !ok {
		return
	}

	months := 0
	if monthsStr := c.Query("months"); monthsStr != "" {
		var err error
		months, err = strconv.Atoi(monthsStr)
		if err != nil {
			logger.Warn("Invalid months parameter", slog.String("months", monthsStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months parameter"})
			return
		}
	}

	var req dto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Forecast", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	projection, err := h.dashboardService.Forecast(c.Request.Context(), req, months, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate forecast")
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(projection))
}
