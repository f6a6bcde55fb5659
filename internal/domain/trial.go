package domain

// TrialOutcome is the result of one simulated trial.
type TrialOutcome struct {
	Won            bool   // user's team won
	PointsScored   int    // points scored by the user's team only
	OpponentPoints int    // points scored by the opponent during the walk
	Resolution     string // event that decided the trial
	TimeLeft       int    // clock when the walk left regulation (may be negative)
	Exchanges      int    // possession exchanges entered
}

// Resolution constants
const (
	ResolutionThreePointMake = "THREE_POINT_MAKE"
	ResolutionTwoPointMake   = "TWO_POINT_MAKE"
	ResolutionOpponentScore  = "OPPONENT_SCORE"
	ResolutionOvertimeWin    = "OVERTIME_WIN"
	ResolutionOvertimeLoss   = "OVERTIME_LOSS"
)

// Resolutions lists every resolution in report order.
var Resolutions = []string{
	ResolutionThreePointMake,
	ResolutionTwoPointMake,
	ResolutionOpponentScore,
	ResolutionOvertimeWin,
	ResolutionOvertimeLoss,
}

// SimulationRun groups the aggregates of one invocation of the runner.
type SimulationRun struct {
	RunID      string               `json:"run_id"`
	Seed       uint64               `json:"seed,omitempty"` // seed of the trial stream, 0 when unknown
	Trials     int                  `json:"trials"`
	Scenario   GameScenario         `json:"scenario"`
	User       TeamParameters       `json:"user"`
	Opponent   OpponentParameters   `json:"opponent"`
	Aggregates []*StrategyAggregate `json:"aggregates"`
}

// Aggregate returns the aggregate for a strategy, or nil.
func (r *SimulationRun) Aggregate(strategyID string) *StrategyAggregate {
	for _, a := range r.Aggregates {
		if a.StrategyID == strategyID {
			return a
		}
	}
	return nil
}
