package storage

import (
	"context"

	"endgame-lab/internal/domain"
)

// RunStore holds simulation run metadata for the lifetime of the process.
type RunStore interface {
	// Insert adds a new run. Returns ErrDuplicateKey if run_id exists.
	Insert(ctx context.Context, r *domain.SimulationRun) error

	// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, runID string) (*domain.SimulationRun, error)
}

// StrategyAggregateStore holds per-strategy aggregates keyed by (run_id, strategy_id).
type StrategyAggregateStore interface {
	// Insert adds a new aggregate. Returns ErrDuplicateKey if key exists.
	Insert(ctx context.Context, a *domain.StrategyAggregate) error

	// GetByKey retrieves an aggregate by its composite key. Returns ErrNotFound if not exists.
	GetByKey(ctx context.Context, runID, strategyID string) (*domain.StrategyAggregate, error)

	// GetByRun retrieves all aggregates of a run in report order.
	GetByRun(ctx context.Context, runID string) ([]*domain.StrategyAggregate, error)

	// GetAll retrieves all aggregates.
	GetAll(ctx context.Context) ([]*domain.StrategyAggregate, error)
}
