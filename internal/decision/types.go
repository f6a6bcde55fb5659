package decision

import (
	"errors"
	"fmt"
)

// Decision is the recommended strategy.
type Decision string

const (
	DecisionThreePoint   Decision = "THREE_POINT"
	DecisionFoul         Decision = "FOUL"
	DecisionNoPreference Decision = "NO_CLEAR_PREFERENCE"
)

// DefaultAlpha is the significance level of the comparison.
const DefaultAlpha = 0.05

// MinTrials is the smallest per-strategy sample the normal approximation is trusted for.
const MinTrials = 30

// Validation errors
var (
	ErrNilInput      = errors.New("decision input is nil")
	ErrInvalidTrials = errors.New("trials must be positive")
	ErrInvalidWins   = errors.New("wins must be within [0, trials]")
	ErrInvalidAlpha  = errors.New("alpha must be within (0, 1)")
)

// DecisionInput contains the win counts of both strategies.
type DecisionInput struct {
	ThreePointWins   int
	ThreePointTrials int
	FoulWins         int
	FoulTrials       int

	// Average points, for context in the report
	ThreePointAvgPoints float64
	FoulAvgPoints       float64

	// Significance level; DefaultAlpha when zero
	Alpha float64
}

// Validate checks counts and alpha.
func (in *DecisionInput) Validate() error {
	if in == nil {
		return ErrNilInput
	}
	if in.ThreePointTrials <= 0 {
		return fmt.Errorf("%w: three_point_trials=%d", ErrInvalidTrials, in.ThreePointTrials)
	}
	if in.FoulTrials <= 0 {
		return fmt.Errorf("%w: foul_trials=%d", ErrInvalidTrials, in.FoulTrials)
	}
	if in.ThreePointWins < 0 || in.ThreePointWins > in.ThreePointTrials {
		return fmt.Errorf("%w: three_point_wins=%d", ErrInvalidWins, in.ThreePointWins)
	}
	if in.FoulWins < 0 || in.FoulWins > in.FoulTrials {
		return fmt.Errorf("%w: foul_wins=%d", ErrInvalidWins, in.FoulWins)
	}
	if in.Alpha != 0 && !(in.Alpha > 0 && in.Alpha < 1) {
		return fmt.Errorf("%w: alpha=%v", ErrInvalidAlpha, in.Alpha)
	}
	return nil
}

// alpha returns the configured significance level.
func (in *DecisionInput) alpha() float64 {
	if in.Alpha == 0 {
		return DefaultAlpha
	}
	return in.Alpha
}

// CriterionResult represents pass/fail for one criterion.
type CriterionResult struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// DecisionResult contains the recommendation with checklist.
type DecisionResult struct {
	Decision Decision

	ThreePointWinPct float64
	FoulWinPct       float64
	DifferencePct    float64 // three-point minus foul, percentage points
	ZStatistic       float64
	PValue           float64
	Alpha            float64

	Criteria []CriterionResult
}
