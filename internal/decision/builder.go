package decision

import (
	"errors"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/reporting"
)

// ErrStrategyNotFound is returned when a strategy is not in the report.
var ErrStrategyNotFound = errors.New("strategy not found in report")

// Builder constructs DecisionInput from Report.
type Builder struct {
	alpha float64
}

// NewBuilder creates a new decision input builder.
// alpha of zero selects DefaultAlpha.
func NewBuilder(alpha float64) *Builder {
	return &Builder{alpha: alpha}
}

// Build creates DecisionInput from the THREE_POINT and FOUL rows of a report.
func (b *Builder) Build(report *reporting.Report) (*DecisionInput, error) {
	var three, foul *reporting.StrategyMetricRow
	for i := range report.StrategyMetrics {
		m := &report.StrategyMetrics[i]
		switch m.StrategyID {
		case domain.StrategyTypeThreePoint:
			three = m
		case domain.StrategyTypeFoul:
			foul = m
		}
	}
	if three == nil || foul == nil {
		return nil, ErrStrategyNotFound
	}

	input := &DecisionInput{
		ThreePointWins:      three.Wins,
		ThreePointTrials:    three.Trials,
		FoulWins:            foul.Wins,
		FoulTrials:          foul.Trials,
		ThreePointAvgPoints: three.AveragePoints,
		FoulAvgPoints:       foul.AveragePoints,
		Alpha:               b.alpha,
	}

	// Validate before returning (fail fast)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return input, nil
}
