package cashflow

import (
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Experiments sums expenses flagged as experiments. An experiment is counted
// as having no return unless its notes mention "success".
func Experiments(transactions []domain.Transaction) domain.ExperimentSummary {
	summary := domain.ExperimentSummary{
		TotalSpend:          decimal.Zero,
		Experiments:         []domain.Experiment{},
		NoReturnExperiments: []string{},
	}
	for _, t := range transactions {
		if !t.IsExperimentSpend() {
			continue
		}
		summary.TotalSpend = summary.TotalSpend.Add(t.Amount)
		summary.ExperimentCount++
		summary.Experiments = append(summary.Experiments, domain.Experiment{
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
			Notes:       t.ExperimentNotes,
		})
		if !strings.Contains(strings.ToLower(t.ExperimentNotes), "success") {
			summary.NoReturnExperiments = append(summary.NoReturnExperiments, t.Description)
		}
	}
	return summary
}
