package strategy

import (
	"errors"

	"endgame-lab/internal/domain"
)

// ErrUnknownStrategyType is returned for a strategy type outside the hardcoded set.
var ErrUnknownStrategyType = errors.New("unknown strategy type")

// FromConfig creates a Strategy from domain.StrategyConfig.
func FromConfig(cfg domain.StrategyConfig) (Strategy, error) {
	switch cfg.StrategyType {
	case domain.StrategyTypeThreePoint:
		return NewThreePointStrategy(), nil
	case domain.StrategyTypeFoul:
		return NewFoulStrategy(), nil
	default:
		return nil, ErrUnknownStrategyType
	}
}

// All returns every supported strategy in report order.
func All() []Strategy {
	out := make([]Strategy, 0, len(domain.StrategyTypes))
	for _, t := range domain.StrategyTypes {
		s, _ := FromConfig(domain.StrategyConfig{StrategyType: t})
		out = append(out, s)
	}
	return out
}
