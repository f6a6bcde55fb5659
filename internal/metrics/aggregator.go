package metrics

import (
	"context"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/storage"
)

// Aggregator turns accumulated trials into stored strategy aggregates.
type Aggregator struct {
	strategyAggStore storage.StrategyAggregateStore
}

// NewAggregator creates a new metrics aggregator.
func NewAggregator(aggStore storage.StrategyAggregateStore) *Aggregator {
	return &Aggregator{strategyAggStore: aggStore}
}

// ComputeAggregate summarizes acc for a run. Returns ErrNoTrials if acc is empty.
func (a *Aggregator) ComputeAggregate(runID string, acc *Accumulator) (*domain.StrategyAggregate, error) {
	agg, err := acc.Summary()
	if err != nil {
		return nil, err
	}
	agg.RunID = runID
	return agg, nil
}

// ComputeAndStore computes and persists the aggregate for the lifetime of the process.
// Returns storage.ErrDuplicateKey if the (run, strategy) aggregate already exists.
func (a *Aggregator) ComputeAndStore(ctx context.Context, runID string, acc *Accumulator) (*domain.StrategyAggregate, error) {
	agg, err := a.ComputeAggregate(runID, acc)
	if err != nil {
		return nil, err
	}

	if a.strategyAggStore != nil {
		if err := a.strategyAggStore.Insert(ctx, agg); err != nil {
			return nil, err
		}
	}

	return agg, nil
}
