package reporting

import (
	"time"

	"endgame-lab/internal/domain"
)

// Report represents the results of one simulation run.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	RunID       string
	Trials      int

	// Inputs
	Scenario domain.GameScenario
	User     domain.TeamParameters
	Opponent domain.OpponentParameters

	// Strategy Metrics (report order: THREE_POINT, FOUL)
	StrategyMetrics []StrategyMetricRow

	// How trials were decided, per strategy
	ResolutionBreakdown []ResolutionRow
}

// StrategyMetricRow represents one row in strategy metrics table.
type StrategyMetricRow struct {
	StrategyID    string
	Trials        int
	Wins          int
	Losses        int
	WinPercentage float64
	WinPctLower   float64
	WinPctUpper   float64
	AveragePoints float64
	PointsStdDev  float64
}

// ResolutionRow counts the trials of a strategy decided by one resolution.
type ResolutionRow struct {
	StrategyID string
	Resolution string
	Count      int
	SharePct   float64 // Count / Trials * 100
}

// StrategyLabel returns the human readable name of a strategy.
func StrategyLabel(strategyID string) string {
	switch strategyID {
	case domain.StrategyTypeThreePoint:
		return "3-point strategy"
	case domain.StrategyTypeFoul:
		return "Foul strategy"
	default:
		return strategyID
	}
}
