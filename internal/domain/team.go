package domain

import "fmt"

// TeamParameters describes the user's team.
// All fields are probabilities in [0,1].
type TeamParameters struct {
	ThreePointProbability       float64 `json:"three_point_probability"`
	TwoPointProbability         float64 `json:"two_point_probability"`
	OvertimeWinProbability      float64 `json:"overtime_win_probability"`
	OffensiveReboundProbability float64 `json:"offensive_rebound_probability"` // collected, not used by either walk
}

// Validate returns ErrOutOfRangeParameter for the first field outside [0,1].
func (p TeamParameters) Validate() error {
	return validateProbabilities(
		probabilityField{"three_point_probability", p.ThreePointProbability},
		probabilityField{"two_point_probability", p.TwoPointProbability},
		probabilityField{"overtime_win_probability", p.OvertimeWinProbability},
		probabilityField{"offensive_rebound_probability", p.OffensiveReboundProbability},
	)
}

// OpponentParameters describes the opposing team.
// Drawn once per program run and held fixed across trials.
type OpponentParameters struct {
	FreeThrowProbability float64 `json:"free_throw_probability"`
	TwoPointProbability  float64 `json:"two_point_probability"`
}

// Validate returns ErrOutOfRangeParameter for the first field outside [0,1].
func (p OpponentParameters) Validate() error {
	return validateProbabilities(
		probabilityField{"opponent_free_throw_probability", p.FreeThrowProbability},
		probabilityField{"opponent_two_point_probability", p.TwoPointProbability},
	)
}

type probabilityField struct {
	name  string
	value float64
}

func validateProbabilities(fields ...probabilityField) error {
	for _, f := range fields {
		if err := ValidateProbability(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateProbability checks that v lies in [0,1]. NaN is rejected.
func ValidateProbability(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s=%v", ErrOutOfRangeParameter, name, v)
	}
	return nil
}
