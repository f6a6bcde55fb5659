package domain

import "fmt"

// GameScenario is the fixed end-game situation every trial starts from.
type GameScenario struct {
	ClockSeconds  int `json:"clock_seconds"`  // regulation time left at the start of a trial
	UserScore     int `json:"user_score"`     // display only
	OpponentScore int `json:"opponent_score"` // display only
}

// Default scenario values.
const (
	DefaultClockSeconds  = 30
	DefaultUserScore     = 67
	DefaultOpponentScore = 70
)

// DefaultScenario is the situation the simulator was built around: down 3 with 30 seconds left.
var DefaultScenario = GameScenario{
	ClockSeconds:  DefaultClockSeconds,
	UserScore:     DefaultUserScore,
	OpponentScore: DefaultOpponentScore,
}

// Validate rejects a negative clock.
func (s GameScenario) Validate() error {
	if s.ClockSeconds < 0 {
		return fmt.Errorf("%w: clock_seconds=%d", ErrInvalidClock, s.ClockSeconds)
	}
	return nil
}

// Deficit returns how many points the user trails by (negative when leading).
func (s GameScenario) Deficit() int {
	return s.OpponentScore - s.UserScore
}

// ScoreLine renders the score as "user-opponent".
func (s GameScenario) ScoreLine() string {
	return fmt.Sprintf("%d-%d", s.UserScore, s.OpponentScore)
}
