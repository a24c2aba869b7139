package services

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config) *portssvc.ServiceContainer {
	opts := cashflow.Options{
		HistoryMonths:   cfg.HistoryMonths,
		MinRunwayMonths: cfg.MinRunwayMonths,
		ForecastMonths:  cfg.ForecastMonths,
		Taxonomy: cashflow.Taxonomy{
			Survival: cfg.SurvivalCategories,
			Growth:   cfg.GrowthCategories,
		},
	}

	return &portssvc.ServiceContainer{
		Dashboard: NewDashboardService(WithAnalysisOptions(opts)),
	}
}
