package strategy

import (
	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
)

// ThreePointStrategy attempts a three-point shot on every possession.
type ThreePointStrategy struct{}

// NewThreePointStrategy creates a new ThreePointStrategy.
func NewThreePointStrategy() *ThreePointStrategy {
	return &ThreePointStrategy{}
}

// ID returns the strategy identifier.
func (s *ThreePointStrategy) ID() string {
	return domain.StrategyTypeThreePoint
}

// Simulate runs one trial:
//   - 4s three-point attempt, made -> win with 3 points
//   - 7s opponent rebound and two-point attempt, made -> loss
//   - clock out at any deduction -> overtime draw
func (s *ThreePointStrategy) Simulate(src rng.Source, input *TrialInput) domain.TrialOutcome {
	return run(src, input, threePointExchange)
}

func threePointExchange(src rng.Source, input *TrialInput, w walk) walk {
	w, ok := deduct(w, ThreePointAttemptSeconds)
	if !ok {
		return w
	}
	if src.Float64() < input.User.ThreePointProbability {
		return resolve(w, true, ThreePointPoints, domain.ResolutionThreePointMake)
	}

	w, ok = deduct(w, ReboundSeconds+PossessionChangeSeconds)
	if !ok {
		return w
	}
	if src.Float64() < input.Opponent.TwoPointProbability {
		w.outcome.OpponentPoints += TwoPointPoints
		return resolve(w, false, 0, domain.ResolutionOpponentScore)
	}
	return w
}

// Ensure ThreePointStrategy implements Strategy
var _ Strategy = (*ThreePointStrategy)(nil)
