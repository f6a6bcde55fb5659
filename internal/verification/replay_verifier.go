package verification

import (
	"context"
	"errors"
	"fmt"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
	"endgame-lab/internal/simulation"
	"endgame-lab/internal/storage"
)

var (
	// ErrRunNotFound is returned when run ID doesn't exist.
	ErrRunNotFound = errors.New("run not found")

	// ErrNotReproducible is returned when a run carries no seed.
	ErrNotReproducible = errors.New("run has no recorded seed")
)

// ReplayVerifier implements Verifier interface.
type ReplayVerifier struct {
	runStore       storage.RunStore
	aggregateStore storage.StrategyAggregateStore

	// newSource builds the random source for a replay. Defaults to rng.NewUniform.
	newSource func(seed uint64) rng.Source
}

// ReplayVerifierOptions contains configuration for creating a ReplayVerifier.
type ReplayVerifierOptions struct {
	RunStore       storage.RunStore
	AggregateStore storage.StrategyAggregateStore
	NewSource      func(seed uint64) rng.Source
}

// NewReplayVerifier creates a new ReplayVerifier.
func NewReplayVerifier(opts ReplayVerifierOptions) *ReplayVerifier {
	v := &ReplayVerifier{
		runStore:       opts.RunStore,
		aggregateStore: opts.AggregateStore,
		newSource:      opts.NewSource,
	}
	if v.newSource == nil {
		v.newSource = func(seed uint64) rng.Source { return rng.NewUniform(seed) }
	}
	return v
}

// VerifyRun replays a stored run and compares aggregates.
func (v *ReplayVerifier) VerifyRun(ctx context.Context, runID string) (*VerificationReport, error) {
	// 1. Load stored run and aggregates
	stored, err := v.runStore.GetByID(ctx, runID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	if stored.Seed == 0 {
		return nil, fmt.Errorf("%w: run_id=%s", ErrNotReproducible, runID)
	}

	storedAggs, err := v.aggregateStore.GetByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	// 2. Replay without stores so the recorded run stays untouched
	runner := simulation.NewRunner(simulation.RunnerOptions{
		Source: v.newSource(stored.Seed),
	})
	replayed, err := runner.Run(ctx, simulation.RunRequest{
		Trials:   stored.Trials,
		User:     stored.User,
		Opponent: stored.Opponent,
		Scenario: stored.Scenario,
		Seed:     stored.Seed,
	})
	if err != nil {
		return nil, err
	}

	// 3. Compare results
	report := &VerificationReport{
		RunID:   runID,
		Seed:    stored.Seed,
		Results: make([]VerificationResult, 0, len(storedAggs)),
	}
	for _, agg := range storedAggs {
		result := verifyAggregate(agg, replayed)
		report.TotalStrategies++
		if result.Match {
			report.MatchedStrategies++
		} else {
			report.DivergentStrategies++
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func verifyAggregate(stored *domain.StrategyAggregate, replayed *domain.SimulationRun) VerificationResult {
	other := replayed.Aggregate(stored.StrategyID)
	if other == nil {
		return VerificationResult{
			StrategyID: stored.StrategyID,
			Divergences: []FieldDivergence{
				{Field: "StrategyID", Expected: stored.StrategyID, Actual: nil},
			},
		}
	}

	divergences := CompareAggregates(stored, other)
	return VerificationResult{
		StrategyID:  stored.StrategyID,
		Match:       len(divergences) == 0,
		Divergences: divergences,
	}
}

var _ Verifier = (*ReplayVerifier)(nil)
