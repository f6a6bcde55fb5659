package verification

import (
	"context"
	"errors"
	"math"
	"testing"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
	"endgame-lab/internal/simulation"
	"endgame-lab/internal/storage/memory"
)

func testAggregate() *domain.StrategyAggregate {
	return &domain.StrategyAggregate{
		RunID:         "run-1",
		StrategyID:    domain.StrategyTypeThreePoint,
		Trials:        100,
		Wins:          40,
		Losses:        60,
		WinPercentage: 40,
		WinPctLower:   30.95,
		WinPctUpper:   49.78,
		AveragePoints: 1.3,
		PointsStdDev:  1.4,
		Resolutions: map[string]int{
			domain.ResolutionThreePointMake: 35,
			domain.ResolutionOpponentScore:  50,
			domain.ResolutionOvertimeWin:    5,
			domain.ResolutionOvertimeLoss:   10,
		},
	}
}

func TestCompareAggregates_Match(t *testing.T) {
	stored := testAggregate()
	replayed := testAggregate()
	replayed.RunID = "other-run"
	replayed.AveragePoints += FloatTolerance / 2

	if d := CompareAggregates(stored, replayed); len(d) != 0 {
		t.Errorf("expected no divergences, got %+v", d)
	}
}

func TestCompareAggregates_ZeroCountKeyEqualsMissing(t *testing.T) {
	stored := testAggregate()
	replayed := testAggregate()
	replayed.Resolutions[domain.ResolutionTwoPointMake] = 0

	if d := CompareAggregates(stored, replayed); len(d) != 0 {
		t.Errorf("expected no divergences, got %+v", d)
	}
}

func TestCompareAggregates_Divergences(t *testing.T) {
	stored := testAggregate()
	replayed := testAggregate()
	replayed.Wins = 41
	replayed.WinPercentage = 41
	replayed.Resolutions = map[string]int{
		domain.ResolutionThreePointMake: 36,
		domain.ResolutionOpponentScore:  50,
		domain.ResolutionOvertimeWin:    5,
		domain.ResolutionOvertimeLoss:   9,
	}

	d := CompareAggregates(stored, replayed)
	fields := make(map[string]bool)
	for _, div := range d {
		fields[div.Field] = true
	}

	for _, want := range []string{
		"Wins",
		"WinPercentage",
		"Resolutions[" + domain.ResolutionThreePointMake + "]",
		"Resolutions[" + domain.ResolutionOvertimeLoss + "]",
	} {
		if !fields[want] {
			t.Errorf("expected divergence on %s, got %+v", want, d)
		}
	}
	if len(d) != 4 {
		t.Errorf("expected 4 divergences, got %d: %+v", len(d), d)
	}
}

func TestCompareAggregates_NaN(t *testing.T) {
	stored := testAggregate()
	replayed := testAggregate()
	stored.PointsStdDev = math.NaN()
	replayed.PointsStdDev = math.NaN()

	if d := CompareAggregates(stored, replayed); len(d) != 0 {
		t.Errorf("NaN should equal NaN, got %+v", d)
	}
}

func runSeeded(t *testing.T, seed uint64, runStore *memory.RunStore, aggStore *memory.StrategyAggregateStore) *domain.SimulationRun {
	t.Helper()

	runner := simulation.NewRunner(simulation.RunnerOptions{
		Source:         rng.NewUniform(seed),
		RunStore:       runStore,
		AggregateStore: aggStore,
	})
	run, err := runner.Run(context.Background(), simulation.RunRequest{
		Trials: 3000,
		User: domain.TeamParameters{
			ThreePointProbability:  0.35,
			TwoPointProbability:    0.5,
			OvertimeWinProbability: 0.5,
		},
		Opponent: domain.OpponentParameters{FreeThrowProbability: 0.7, TwoPointProbability: 0.45},
		Scenario: domain.DefaultScenario,
		Seed:     seed,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return run
}

func TestReplayVerifier_VerifyRun_Reproducible(t *testing.T) {
	runStore := memory.NewRunStore()
	aggStore := memory.NewStrategyAggregateStore()
	run := runSeeded(t, 2024, runStore, aggStore)

	verifier := NewReplayVerifier(ReplayVerifierOptions{RunStore: runStore, AggregateStore: aggStore})
	report, err := verifier.VerifyRun(context.Background(), run.RunID)
	if err != nil {
		t.Fatalf("VerifyRun failed: %v", err)
	}

	if !report.Reproducible() {
		t.Errorf("expected reproducible run, got %+v", report.Results)
	}
	if report.TotalStrategies != 2 || report.MatchedStrategies != 2 {
		t.Errorf("expected 2/2 matched, got %d/%d", report.MatchedStrategies, report.TotalStrategies)
	}
	if report.Seed != 2024 {
		t.Errorf("expected seed 2024, got %d", report.Seed)
	}

	// Replay leaves the stores untouched
	all, err := aggStore.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 stored aggregates, got %d", len(all))
	}
}

func TestReplayVerifier_VerifyRun_DetectsDivergence(t *testing.T) {
	runStore := memory.NewRunStore()
	aggStore := memory.NewStrategyAggregateStore()
	run := runSeeded(t, 7, runStore, aggStore)

	// Replay from a different stream
	verifier := NewReplayVerifier(ReplayVerifierOptions{
		RunStore:       runStore,
		AggregateStore: aggStore,
		NewSource:      func(uint64) rng.Source { return rng.Constant(0.99) },
	})
	report, err := verifier.VerifyRun(context.Background(), run.RunID)
	if err != nil {
		t.Fatalf("VerifyRun failed: %v", err)
	}

	if report.Reproducible() {
		t.Error("expected divergences with a different random stream")
	}
	if report.DivergentStrategies == 0 {
		t.Error("expected at least one divergent strategy")
	}
}

func TestReplayVerifier_VerifyRun_Errors(t *testing.T) {
	runStore := memory.NewRunStore()
	aggStore := memory.NewStrategyAggregateStore()
	verifier := NewReplayVerifier(ReplayVerifierOptions{RunStore: runStore, AggregateStore: aggStore})

	if _, err := verifier.VerifyRun(context.Background(), "missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}

	run := runSeeded(t, 0, runStore, aggStore)
	if _, err := verifier.VerifyRun(context.Background(), run.RunID); !errors.Is(err, ErrNotReproducible) {
		t.Errorf("expected ErrNotReproducible, got %v", err)
	}
}
