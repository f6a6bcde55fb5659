package metrics

import (
	"errors"

	"endgame-lab/internal/domain"
)

// ErrNoTrials is returned when summarizing an accumulator that saw no trials.
var ErrNoTrials = errors.New("no trials available for aggregation")

// Accumulator holds the running counters for one strategy.
// Memory use does not grow with the number of trials.
type Accumulator struct {
	strategyID      string
	trials          int
	wins            int
	totalPoints     int
	pointsHistogram map[int]int
	resolutions     map[string]int
}

// NewAccumulator creates an empty accumulator for a strategy.
func NewAccumulator(strategyID string) *Accumulator {
	return &Accumulator{
		strategyID:      strategyID,
		pointsHistogram: make(map[int]int),
		resolutions:     make(map[string]int),
	}
}

// Add folds one trial outcome into the counters.
func (a *Accumulator) Add(o domain.TrialOutcome) {
	a.trials++
	if o.Won {
		a.wins++
	}
	a.totalPoints += o.PointsScored
	a.pointsHistogram[o.PointsScored]++
	if o.Resolution != "" {
		a.resolutions[o.Resolution]++
	}
}

// Trials returns the number of outcomes added.
func (a *Accumulator) Trials() int {
	return a.trials
}

// Wins returns the number of winning outcomes added.
func (a *Accumulator) Wins() int {
	return a.wins
}

// Summary computes the aggregate. Returns ErrNoTrials if nothing was added.
func (a *Accumulator) Summary() (*domain.StrategyAggregate, error) {
	if a.trials == 0 {
		return nil, ErrNoTrials
	}
	return summarize(a), nil
}
