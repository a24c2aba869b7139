// Package cashflow is the financial analysis engine behind the dashboard.
//
// Every function is a pure transformation of the supplied transactions,
// business profile and an explicit "now". Nothing here reads the clock,
// logs, or mutates its inputs, so one pass over the same inputs always
// yields the same output and callers may share inputs across goroutines.
package cashflow

// Policy constants. These are product decisions rather than derived values;
// tests pin them and changes belong here.
const (
	// RunwaySentinel stands for "effectively infinite" runway when nothing is burning.
	RunwaySentinel = 999

	// BurnWindowMonths is the trailing window used for burn rate and burn classification.
	BurnWindowMonths = 3

	DefaultHistoryMonths   = 6
	DefaultMinRunwayMonths = 6
	DefaultForecastMonths  = 6

	// daysPerMonth converts a runway in months to a cash-out date.
	daysPerMonth = 30
)

// Health score policy.
const (
	balanceFactorCap     = 25.0
	coverTargetMonths    = 12.0
	noBurnCoverMonths    = 12.0
	burnRateFactorCap    = 20.0
	expenseRatioBaseline = 0.5
	noIncomeExpenseRatio = 2.0
	runwayFactorCap      = 25.0
	runwayTargetMonths   = 18.0
	trendFactorCap       = 15.0
	trendFactorNeutral   = 7.5
	trendWindow          = 3

	healthyScore  = 70
	moderateScore = 50
	warningScore  = 30
)

// Safe-to-spend policy.
const (
	// discretionaryReserveShare is the slice of the unprotected balance that may be spent on top of excess income.
	discretionaryReserveShare = "0.1"
	modestSpendPercentage     = 10
)

// Burn classification policy.
const (
	growthHeavyShare   = "0.4"
	survivalHeavyShare = "0.7"
)

// Income stability policy.
const (
	minVolatilityPoints    = 3
	neutralVolatility      = 50.0
	maxVolatility          = 100.0
	trendRiseMultiplier    = 1.1
	trendFallMultiplier    = 0.9
	stableVolatilityLimit  = 30.0
	stableRecurringShare   = 50.0
	volatileWarningLimit   = 50.0
	lowRecurringShareLimit = 30.0
)

// Advisory policy.
const (
	criticalRunwayMonths = 3
	warningRunwayMonths  = 6
	hiringSafeRunway     = 12
	healthyRunwayCeiling = 18
	expenseSpikeRatio    = "1.3"

	maxWeeklyActions     = 5
	wasteActionThreshold = 500

	killerLookbackMonths    = 3
	killerMinGrowthPct      = 10.0
	killerMediumGrowthPct   = 25.0
	killerHighGrowthPct     = 50.0
	recurringSoftwareLimit  = 200
	recurringSoftwareSevere = 500
)

// Founder draw policy. The 0.5 dampening on runway impact has no derivation
// behind it and is kept as-is until product revisits it.
const (
	founderDrawImpactFactor = "0.5"
	founderDrawWarningShare = "0.3"
)
