package input

import (
	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
)

// RandomOpponent draws both opponent probabilities uniformly from [0,1).
// Called once per program run; every trial then plays the same opponent.
func RandomOpponent(src rng.Source) domain.OpponentParameters {
	return domain.OpponentParameters{
		FreeThrowProbability: src.Float64(),
		TwoPointProbability:  src.Float64(),
	}
}
