package dto

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// DashboardResponse is the dashboard payload plus values derived for display.
type DashboardResponse struct {
	domain.Dashboard
	AsOfDate string `json:"asOfDate"`
	// ShortfallMonth is the first forecast month whose projected balance is negative, 0 if none.
	ShortfallMonth int `json:"shortfallMonth"`
}

// ForecastResponse is the cash projection payload.
type ForecastResponse struct {
	AsOf           string               `json:"asOf"`
	Months         []domain.MonthlyData `json:"months"`
	ShortfallMonth int                  `json:"shortfallMonth"`
}

// ToDashboardResponse converts a domain dashboard to its response DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Dashboard:      *d,
		AsOfDate:       d.AsOf.Format(DateLayout),
		ShortfallMonth: cashflow.FirstShortfall(d.Forecast),
	}
}

// ToForecastResponse converts a projection to its response DTO.
func ToForecastResponse(p *domain.CashProjection) ForecastResponse {
	return ForecastResponse{
		AsOf:           p.AsOf.Format(DateLayout),
		Months:         p.Months,
		ShortfallMonth: cashflow.FirstShortfall(p.Months),
	}
}
