package strategy

import (
	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
)

// FoulStrategy intentionally fouls and plays for a two-point basket
// when the opponent misses a free throw.
type FoulStrategy struct{}

// NewFoulStrategy creates a new FoulStrategy.
func NewFoulStrategy() *FoulStrategy {
	return &FoulStrategy{}
}

// ID returns the strategy identifier.
func (s *FoulStrategy) ID() string {
	return domain.StrategyTypeFoul
}

// Simulate runs one trial:
//   - 2s foul, then two opponent free throws
//   - 7s rebound and possession change
//   - fewer than 2 free throws made -> 3s two-point attempt, made -> win with 2 points
//   - clock out at any deduction -> overtime draw
func (s *FoulStrategy) Simulate(src rng.Source, input *TrialInput) domain.TrialOutcome {
	return run(src, input, foulExchange)
}

func foulExchange(src rng.Source, input *TrialInput, w walk) walk {
	w, ok := deduct(w, FoulSeconds)
	if !ok {
		return w
	}

	made := 0
	for i := 0; i < FreeThrowsPerFoul; i++ {
		if src.Float64() < input.Opponent.FreeThrowProbability {
			made++
		}
	}
	w.outcome.OpponentPoints += made

	w, ok = deduct(w, ReboundSeconds+PossessionChangeSeconds)
	if !ok {
		return w
	}

	if made < FreeThrowsPerFoul {
		w, ok = deduct(w, TwoPointAttemptSeconds)
		if !ok {
			return w
		}
		if src.Float64() < input.User.TwoPointProbability {
			return resolve(w, true, TwoPointPoints, domain.ResolutionTwoPointMake)
		}
	}
	return w
}

// Ensure FoulStrategy implements Strategy
var _ Strategy = (*FoulStrategy)(nil)
