package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"endgame-lab/internal/config"
	"endgame-lab/internal/decision"
	"endgame-lab/internal/domain"
	"endgame-lab/internal/input"
	"endgame-lab/internal/logger"
	"endgame-lab/internal/observability"
	"endgame-lab/internal/reporting"
	"endgame-lab/internal/rng"
	"endgame-lab/internal/simulation"
	"endgame-lab/internal/storage/memory"
	"endgame-lab/internal/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Team parameters (negative = prompt)
	threePoint := flag.Float64("three-point", -1, "Your team's 3-point probability [0,1]")
	twoPoint := flag.Float64("two-point", -1, "Your team's 2-point probability [0,1]")
	overtime := flag.Float64("overtime", -1, "Your team's overtime win probability [0,1]")
	offRebound := flag.Float64("offensive-rebound", -1, "Your team's offensive rebound probability [0,1]")

	// Opponent parameters (negative = random)
	oppFreeThrow := flag.Float64("opp-free-throw", -1, "Opponent free-throw probability [0,1]")
	oppTwoPoint := flag.Float64("opp-two-point", -1, "Opponent 2-point probability [0,1]")

	// Run
	trials := flag.Int("trials", cfg.Trials, "Trials per strategy (0 = prompt)")
	clock := flag.Int("clock", cfg.Scenario.ClockSeconds, "Seconds left on the game clock")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed (0 = time-derived)")
	alpha := flag.Float64("alpha", decision.DefaultAlpha, "Significance level of the strategy comparison")
	verify := flag.Bool("verify", false, "Replay the run from its seed and check the results are reproduced")

	// Output
	format := flag.String("format", cfg.Format, "Output: text, markdown, csv, json")
	metricsFile := flag.String("metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file after the run")

	flag.Parse()

	cfg.Trials = *trials
	cfg.Scenario.ClockSeconds = *clock
	cfg.Seed = *seed
	cfg.Format = strings.ToLower(*format)
	cfg.MetricsFile = *metricsFile

	// Setup logger
	l := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(l)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Warn().Str("signal", sig.String()).Msg("received signal, stopping simulation")
		cancel()
	}()

	// Prompts go to stderr when stdout carries machine readable output
	var promptOut io.Writer = os.Stdout
	if cfg.Format != config.FormatText {
		promptOut = os.Stderr
	}
	prompter := input.NewPrompter(os.Stdin, promptOut)

	// One continuous stream for every trial; the opponent is drawn from a sibling stream
	// so the trial stream can be replayed from its seed alone.
	src := rng.NewUniform(cfg.Seed)
	opponentSrc := rng.NewUniform(src.Seed() + 1)
	log.Debug().Uint64("seed", src.Seed()).Msg("random source ready")

	fmt.Fprintln(promptOut, reporting.RenderBanner(cfg.Scenario))

	user, err := resolveTeamParameters(prompter, *threePoint, *twoPoint, *overtime, *offRebound)
	if err != nil {
		log.Fatal().Err(err).Msg("read team parameters")
	}

	opponent := resolveOpponent(opponentSrc, *oppFreeThrow, *oppTwoPoint)
	fmt.Fprintln(promptOut)
	fmt.Fprintln(promptOut, reporting.RenderOpponent(opponent))

	if cfg.Trials == 0 {
		n, err := prompter.ReadTrialCount()
		if err != nil {
			log.Fatal().Err(err).Msg("read trial count")
		}
		cfg.Trials = n
	}

	// Create stores (process lifetime only)
	runStore := memory.NewRunStore()
	aggStore := memory.NewStrategyAggregateStore()
	m := observability.NewMetrics("")

	runner := simulation.NewRunner(simulation.RunnerOptions{
		Source:         src,
		RunStore:       runStore,
		AggregateStore: aggStore,
		Metrics:        m,
		Logger:         &l,
	})

	fmt.Fprintln(promptOut, "\nRunning Monte Carlo simulation for basketball end-game scenarios...")

	run, err := runner.Run(ctx, simulation.RunRequest{
		Trials:   cfg.Trials,
		User:     user,
		Opponent: opponent,
		Scenario: cfg.Scenario,
		Seed:     src.Seed(),
	})
	writeMetrics(m, cfg.MetricsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	if *verify {
		verifyRun(ctx, runStore, aggStore, run.RunID)
	}

	report, err := reporting.NewGenerator(runStore, aggStore).Generate(ctx, run.RunID)
	if err != nil {
		log.Fatal().Err(err).Msg("generate report")
	}

	decisionInput, err := decision.NewBuilder(*alpha).Build(report)
	if err != nil {
		log.Fatal().Err(err).Msg("build decision input")
	}
	result, err := decision.NewEvaluator().Evaluate(*decisionInput)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluate strategies")
	}

	if err := writeOutput(os.Stdout, cfg.Format, run, report, result); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}

// verifyRun replays the run and logs whether it was reproduced.
func verifyRun(ctx context.Context, runStore *memory.RunStore, aggStore *memory.StrategyAggregateStore, runID string) {
	verifier := verification.NewReplayVerifier(verification.ReplayVerifierOptions{
		RunStore:       runStore,
		AggregateStore: aggStore,
	})
	vr, err := verifier.VerifyRun(ctx, runID)
	if err != nil {
		log.Fatal().Err(err).Msg("verify run")
	}
	if !vr.Reproducible() {
		for _, r := range vr.Results {
			for _, d := range r.Divergences {
				log.Error().
					Str("strategy", r.StrategyID).
					Str("field", d.Field).
					Interface("stored", d.Expected).
					Interface("replayed", d.Actual).
					Msg("replay diverged")
			}
		}
		log.Fatal().Str("run_id", runID).Msg("run is not reproducible")
	}
	log.Info().
		Str("run_id", runID).
		Uint64("seed", vr.Seed).
		Int("strategies", vr.MatchedStrategies).
		Msg("run reproduced")
}

// writeMetrics dumps metrics to path; failures are logged, never fatal.
func writeMetrics(m *observability.Metrics, path string) {
	if path == "" {
		return
	}
	if err := m.WriteToTextfile(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("write metrics")
		return
	}
	log.Debug().Str("path", path).Msg("metrics written")
}

// resolveTeamParameters uses flag values in [0,1] and prompts for the rest.
func resolveTeamParameters(p *input.Prompter, threePoint, twoPoint, overtime, offRebound float64) (domain.TeamParameters, error) {
	fields := []struct {
		flagValue float64
		prompt    string
	}{
		{threePoint, "Your team's 3-point probability: "},
		{twoPoint, "Your team's 2-point probability: "},
		{overtime, "Your team's overtime win probability: "},
		{offRebound, "Your team's offensive rebound probability: "},
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		if f.flagValue >= 0 {
			values[i] = f.flagValue
			continue
		}
		v, err := p.ReadProbability(f.prompt)
		if err != nil {
			return domain.TeamParameters{}, err
		}
		values[i] = v
	}

	params := domain.TeamParameters{
		ThreePointProbability:       values[0],
		TwoPointProbability:         values[1],
		OvertimeWinProbability:      values[2],
		OffensiveReboundProbability: values[3],
	}
	return params, params.Validate()
}

// resolveOpponent uses flag values when given and draws the rest.
func resolveOpponent(src rng.Source, freeThrow, twoPoint float64) domain.OpponentParameters {
	opp := input.RandomOpponent(src)
	if freeThrow >= 0 {
		opp.FreeThrowProbability = freeThrow
	}
	if twoPoint >= 0 {
		opp.TwoPointProbability = twoPoint
	}
	return opp
}

// jsonOutput is the JSON document written by -format json.
type jsonOutput struct {
	Run            *domain.SimulationRun      `json:"run"`
	Recommendation decision.Decision          `json:"recommendation"`
	PValue         float64                    `json:"p_value"`
	Criteria       []decision.CriterionResult `json:"criteria"`
}

func writeOutput(w io.Writer, format string, run *domain.SimulationRun, report *reporting.Report, result *decision.DecisionResult) error {
	var out string
	switch format {
	case config.FormatMarkdown:
		out = reporting.RenderMarkdown(report) + decision.RenderMarkdown(result)
	case config.FormatCSV:
		out = reporting.RenderCSV(report.StrategyMetrics)
	case config.FormatJSON:
		b, err := json.MarshalIndent(jsonOutput{
			Run:            run,
			Recommendation: result.Decision,
			PValue:         result.PValue,
			Criteria:       result.Criteria,
		}, "", "  ")
		if err != nil {
			return err
		}
		out = string(b) + "\n"
	default:
		out = "\n" + reporting.RenderText(report) + "\n" + decision.RenderText(result)
	}
	_, err := io.WriteString(w, out)
	return err
}
