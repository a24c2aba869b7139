package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightType is the tone of a dashboard insight.
type InsightType string

const (
	InsightInfo    InsightType = "info"
	InsightWarning InsightType = "warning"
	InsightDanger  InsightType = "danger"
	InsightSuccess InsightType = "success"
)

// Insight is a short dashboard observation.
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	ActionLabel string      `json:"actionLabel,omitempty"`
}

// CFOInsightType groups CFO insights by topic.
type CFOInsightType string

const (
	CFOHiring  CFOInsightType = "hiring"
	CFOExpense CFOInsightType = "expense"
	CFORevenue CFOInsightType = "revenue"
	CFORunway  CFOInsightType = "runway"
	CFOGeneral CFOInsightType = "general"
)

// Priority orders advisory output.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort position of a priority, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// CFOInsight is a piece of rule-based financial advice.
type CFOInsight struct {
	ID       string         `json:"id"`
	Type     CFOInsightType `json:"type"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Impact   string         `json:"impact,omitempty"`
	Priority Priority       `json:"priority"`
}

// AlertType identifies what triggered a panic alert.
type AlertType string

const (
	AlertRunwayCritical  AlertType = "runway_critical"
	AlertExpenseSpike    AlertType = "expense_spike"
	AlertConsecutiveLoss AlertType = "consecutive_loss"
	AlertPaymentDue      AlertType = "payment_due"
)

// Severity of a panic alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// PanicAlert is an urgent condition the caller may dismiss by ID.
type PanicAlert struct {
	ID          string    `json:"id"`
	Type        AlertType `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"createdAt"`
	IsRead      bool      `json:"isRead"`
	IsDismissed bool      `json:"isDismissed"`
}

// ActionCategory groups weekly actions.
type ActionCategory string

const (
	ActionReview   ActionCategory = "review"
	ActionReduce   ActionCategory = "reduce"
	ActionIncrease ActionCategory = "increase"
	ActionDelay    ActionCategory = "delay"
)

// WeeklyAction is a suggested task for the coming week.
type WeeklyAction struct {
	ID          string         `json:"id"`
	Action      string         `json:"action"`
	Category    ActionCategory `json:"category"`
	IsCompleted bool           `json:"isCompleted"`
	Reason      string         `json:"reason"`
}

// KillerSeverity bands a silent expense killer.
type KillerSeverity string

const (
	KillerLow    KillerSeverity = "low"
	KillerMedium KillerSeverity = "medium"
	KillerHigh   KillerSeverity = "high"
)

// SilentExpenseKiller is a cost that is quietly growing or unusually high.
type SilentExpenseKiller struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	MonthlyAmount    decimal.Decimal `json:"monthlyAmount" swaggertype:"string"`
	GrowthRate       float64         `json:"growthRate"` // Percentage increase
	ActionSuggestion string          `json:"actionSuggestion"`
	Severity         KillerSeverity  `json:"severity"`
}
