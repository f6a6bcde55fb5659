package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/metrics"
	"endgame-lab/internal/observability"
	"endgame-lab/internal/rng"
	"endgame-lab/internal/storage"
	"endgame-lab/internal/strategy"
)

// ctxCheckInterval is how many trials run between cancellation checks.
const ctxCheckInterval = 1024

// Runner executes Monte Carlo runs over every strategy.
type Runner struct {
	source     rng.Source
	strategies []strategy.Strategy
	runStore   storage.RunStore
	aggregator *metrics.Aggregator
	newRunID   func() string
	obs        *observability.Metrics
	log        zerolog.Logger
}

// RunnerOptions contains configuration for creating a Runner.
type RunnerOptions struct {
	Source         rng.Source          // defaults to a time-seeded uniform source
	Strategies     []strategy.Strategy // defaults to strategy.All()
	RunStore       storage.RunStore    // optional
	AggregateStore storage.StrategyAggregateStore
	NewRunID       func() string          // defaults to uuid.NewString
	Metrics        *observability.Metrics // optional
	Logger         *zerolog.Logger
}

// RunRequest describes one run.
type RunRequest struct {
	Trials   int
	User     domain.TeamParameters
	Opponent domain.OpponentParameters
	Scenario domain.GameScenario

	// Seed of Source, recorded on the run so it can be replayed. Zero means unknown.
	Seed uint64
}

// Validate rejects out-of-range parameters, a negative clock and a non-positive trial count.
func (req RunRequest) Validate() error {
	if req.Trials <= 0 {
		return fmt.Errorf("%w: trials=%d", domain.ErrInvalidTrialCount, req.Trials)
	}
	if err := req.User.Validate(); err != nil {
		return err
	}
	if err := req.Opponent.Validate(); err != nil {
		return err
	}
	return req.Scenario.Validate()
}

// NewRunner creates a simulation runner.
func NewRunner(opts RunnerOptions) *Runner {
	r := &Runner{
		source:     opts.Source,
		strategies: opts.Strategies,
		runStore:   opts.RunStore,
		aggregator: metrics.NewAggregator(opts.AggregateStore),
		newRunID:   opts.NewRunID,
		obs:        opts.Metrics,
		log:        zerolog.Nop(),
	}
	if r.source == nil {
		r.source = rng.NewUniform(0)
	}
	if len(r.strategies) == 0 {
		r.strategies = strategy.All()
	}
	if r.newRunID == nil {
		r.newRunID = uuid.NewString
	}
	if opts.Logger != nil {
		r.log = *opts.Logger
	}
	return r
}

// Run executes req.Trials trials of every strategy.
// Steps:
//  1. Validate the request (no clamping)
//  2. Register the run
//  3. Play trials, one of each strategy per iteration, from one continuous random stream
//  4. Summarize and store one aggregate per strategy
func (r *Runner) Run(ctx context.Context, req RunRequest) (*domain.SimulationRun, error) {
	start := time.Now()

	// 1. Validate
	if err := req.Validate(); err != nil {
		r.obs.RecordRun(observability.StatusInvalid, time.Since(start))
		return nil, err
	}

	run, err := r.run(ctx, req)
	switch {
	case err == nil:
		r.obs.RecordRun(observability.StatusOK, time.Since(start))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		r.obs.RecordRun(observability.StatusCancelled, time.Since(start))
	default:
		r.obs.RecordRun(observability.StatusFailed, time.Since(start))
	}
	return run, err
}

func (r *Runner) run(ctx context.Context, req RunRequest) (*domain.SimulationRun, error) {

	// 2. Register the run
	run := &domain.SimulationRun{
		RunID:    r.newRunID(),
		Seed:     req.Seed,
		Trials:   req.Trials,
		Scenario: req.Scenario,
		User:     req.User,
		Opponent: req.Opponent,
	}
	if r.runStore != nil {
		if err := r.runStore.Insert(ctx, run); err != nil {
			return nil, err
		}
	}

	log := r.log.With().Str("run_id", run.RunID).Logger()
	log.Info().
		Int("trials", req.Trials).
		Int("clock_seconds", req.Scenario.ClockSeconds).
		Int("strategies", len(r.strategies)).
		Msg("simulation started")

	// 3. Play trials
	input := &strategy.TrialInput{
		User:     req.User,
		Opponent: req.Opponent,
		TimeLeft: req.Scenario.ClockSeconds,
	}
	accs := make([]*metrics.Accumulator, len(r.strategies))
	for i, s := range r.strategies {
		accs[i] = metrics.NewAccumulator(s.ID())
	}

	for trial := 0; trial < req.Trials; trial++ {
		if trial%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				log.Warn().Int("completed_trials", trial).Msg("simulation cancelled")
				return nil, err
			}
		}
		for i, s := range r.strategies {
			accs[i].Add(s.Simulate(r.source, input))
		}
	}

	// 4. Summarize and store
	for _, acc := range accs {
		agg, err := r.aggregator.ComputeAndStore(ctx, run.RunID, acc)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("strategy", agg.StrategyID).
			Int("wins", agg.Wins).
			Float64("win_pct", agg.WinPercentage).
			Float64("avg_points", agg.AveragePoints).
			Msg("strategy summarized")
		r.obs.RecordAggregate(agg)
		run.Aggregates = append(run.Aggregates, agg)
	}

	return run, nil
}
