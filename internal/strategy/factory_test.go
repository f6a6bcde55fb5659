package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endgame-lab/internal/domain"
)

func TestFromConfig_ThreePoint(t *testing.T) {
	s, err := FromConfig(domain.StrategyConfig{StrategyType: domain.StrategyTypeThreePoint})
	require.NoError(t, err)

	_, ok := s.(*ThreePointStrategy)
	require.True(t, ok, "expected *ThreePointStrategy, got %T", s)
	assert.Equal(t, domain.StrategyTypeThreePoint, s.ID())
}

func TestFromConfig_Foul(t *testing.T) {
	s, err := FromConfig(domain.StrategyConfig{StrategyType: domain.StrategyTypeFoul})
	require.NoError(t, err)

	_, ok := s.(*FoulStrategy)
	require.True(t, ok, "expected *FoulStrategy, got %T", s)
	assert.Equal(t, domain.StrategyTypeFoul, s.ID())
}

func TestFromConfig_Unknown(t *testing.T) {
	_, err := FromConfig(domain.StrategyConfig{StrategyType: "ZONE_DEFENSE"})
	assert.ErrorIs(t, err, ErrUnknownStrategyType)
}

func TestAll_ReportOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, domain.StrategyTypeThreePoint, all[0].ID())
	assert.Equal(t, domain.StrategyTypeFoul, all[1].ID())
}
