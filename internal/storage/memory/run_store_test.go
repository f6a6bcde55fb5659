package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/storage"
)

func TestRunStore_InsertAndGet(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	run := &domain.SimulationRun{
		RunID:      "run-1",
		Trials:     500,
		Scenario:   domain.DefaultScenario,
		Aggregates: []*domain.StrategyAggregate{{StrategyID: domain.StrategyTypeFoul}},
	}
	require.NoError(t, store.Insert(ctx, run))

	got, err := store.GetByID(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 500, got.Trials)
	assert.Equal(t, domain.DefaultScenario, got.Scenario)
	assert.Nil(t, got.Aggregates, "aggregates live in the aggregate store")
}

func TestRunStore_Errors(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Insert(ctx, nil), storage.ErrInvalidInput)
	assert.ErrorIs(t, store.Insert(ctx, &domain.SimulationRun{}), storage.ErrInvalidInput)

	require.NoError(t, store.Insert(ctx, &domain.SimulationRun{RunID: "run-1"}))
	assert.ErrorIs(t, store.Insert(ctx, &domain.SimulationRun{RunID: "run-1"}), storage.ErrDuplicateKey)

	_, err := store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
