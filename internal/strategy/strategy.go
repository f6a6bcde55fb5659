package strategy

import (
	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
)

// Strategy plays out one randomized end-game trial.
type Strategy interface {
	// Simulate runs one trial from input.TimeLeft and returns its outcome.
	// Implementations hold no state between calls; all randomness comes from src.
	Simulate(src rng.Source, input *TrialInput) domain.TrialOutcome

	// ID returns the strategy identifier.
	ID() string
}

// TrialInput holds all data needed for one trial.
type TrialInput struct {
	User     domain.TeamParameters
	Opponent domain.OpponentParameters
	TimeLeft int // seconds of regulation left
}

// Validate checks the input at the package boundary.
func (in *TrialInput) Validate() error {
	if err := in.User.Validate(); err != nil {
		return err
	}
	if err := in.Opponent.Validate(); err != nil {
		return err
	}
	return domain.GameScenario{ClockSeconds: in.TimeLeft}.Validate()
}

// Clock costs in seconds.
const (
	ThreePointAttemptSeconds = 4 // three-point attempt
	ReboundSeconds           = 7 // defensive rebound and the shot that follows
	PossessionChangeSeconds  = 0 // extra cost on a change of possession, folded into the rebound
	FoulSeconds              = 2 // committing the foul
	TwoPointAttemptSeconds   = 3 // two-point attempt after a missed free throw

	// FreeThrowsPerFoul is the number of free throws awarded per foul.
	FreeThrowsPerFoul = 2

	// Points credited to the user's team.
	ThreePointPoints = 3
	TwoPointPoints   = 2
	OvertimePoints   = 2
)
