package domain

// StrategyAggregate is the summary of many trials of one strategy.
// Derived once by the metrics accumulator and never mutated afterwards.
type StrategyAggregate struct {
	RunID      string `json:"run_id"`
	StrategyID string `json:"strategy_id"`

	// Counts
	Trials int `json:"trials"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	// Win probability, in percent
	WinPercentage float64 `json:"win_percentage"` // wins / trials * 100
	WinPctLower   float64 `json:"win_pct_lower"`  // Wilson 95% lower bound
	WinPctUpper   float64 `json:"win_pct_upper"`  // Wilson 95% upper bound

	// Points scored by the user's team
	AveragePoints float64 `json:"average_points"`
	PointsStdDev  float64 `json:"points_std_dev"`

	// Resolutions counts trials by the event that decided them.
	Resolutions map[string]int `json:"resolutions"`
}

// ResolutionCount returns the number of trials decided by the given resolution.
func (a *StrategyAggregate) ResolutionCount(resolution string) int {
	if a.Resolutions == nil {
		return 0
	}
	return a.Resolutions[resolution]
}

// StrategyConfig selects one of the hardcoded strategies.
type StrategyConfig struct {
	StrategyType string // "THREE_POINT" | "FOUL"
}

// Strategy type constants
const (
	StrategyTypeThreePoint = "THREE_POINT"
	StrategyTypeFoul       = "FOUL"
)

// StrategyTypes lists every supported strategy in report order.
var StrategyTypes = []string{StrategyTypeThreePoint, StrategyTypeFoul}
