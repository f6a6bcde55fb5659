package decision

import (
	"errors"
	"math"
	"strings"
	"testing"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/reporting"
)

func TestEvaluate_ThreePoint(t *testing.T) {
	evaluator := NewEvaluator()

	result, err := evaluator.Evaluate(DecisionInput{
		ThreePointWins:   600,
		ThreePointTrials: 1000,
		FoulWins:         400,
		FoulTrials:       1000,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result.Decision != DecisionThreePoint {
		t.Errorf("Expected THREE_POINT, got %s", result.Decision)
	}
	if math.Abs(result.DifferencePct-20) > 1e-9 {
		t.Errorf("Expected +20pp, got %f", result.DifferencePct)
	}
	if result.Alpha != DefaultAlpha {
		t.Errorf("Expected default alpha, got %f", result.Alpha)
	}
	for i, c := range result.Criteria {
		if !c.Pass {
			t.Errorf("criterion %d (%s) should pass, got fail", i+1, c.Name)
		}
	}
}

func TestEvaluate_Foul(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins:   400,
		ThreePointTrials: 1000,
		FoulWins:         600,
		FoulTrials:       1000,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result.Decision != DecisionFoul {
		t.Errorf("Expected FOUL, got %s", result.Decision)
	}
	if result.ZStatistic >= 0 {
		t.Errorf("Expected negative z, got %f", result.ZStatistic)
	}
}

func TestEvaluate_ZTestValues(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins:   60,
		ThreePointTrials: 100,
		FoulWins:         40,
		FoulTrials:       100,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if math.Abs(result.ZStatistic-2.828427) > 1e-5 {
		t.Errorf("Expected z=2.828427, got %f", result.ZStatistic)
	}
	if math.Abs(result.PValue-0.004678) > 1e-5 {
		t.Errorf("Expected p=0.004678, got %f", result.PValue)
	}
}

func TestEvaluate_NoPreference_NotSignificant(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins:   52,
		ThreePointTrials: 100,
		FoulWins:         50,
		FoulTrials:       100,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result.Decision != DecisionNoPreference {
		t.Errorf("Expected NO_CLEAR_PREFERENCE, got %s", result.Decision)
	}
	if math.Abs(result.PValue-0.7773) > 1e-3 {
		t.Errorf("Expected p~0.777, got %f", result.PValue)
	}
	if result.Criteria[2].Pass {
		t.Error("significance criterion should fail")
	}
}

func TestEvaluate_NoPreference_SmallSample(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins:   20,
		ThreePointTrials: 20,
		FoulWins:         0,
		FoulTrials:       20,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result.Decision != DecisionNoPreference {
		t.Errorf("Expected NO_CLEAR_PREFERENCE, got %s", result.Decision)
	}
	if result.Criteria[0].Pass {
		t.Error("sample size criterion should fail")
	}
}

func TestEvaluate_IdenticalDegenerateSamples(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins:   0,
		ThreePointTrials: 500,
		FoulWins:         0,
		FoulTrials:       500,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if result.ZStatistic != 0 || result.PValue != 1 {
		t.Errorf("Expected z=0 p=1, got z=%f p=%f", result.ZStatistic, result.PValue)
	}
	if result.Decision != DecisionNoPreference {
		t.Errorf("Expected NO_CLEAR_PREFERENCE, got %s", result.Decision)
	}
}

func TestEvaluate_CustomAlpha(t *testing.T) {
	// p ~ 0.0047 passes at 0.05 but not at 0.001
	input := DecisionInput{
		ThreePointWins:   60,
		ThreePointTrials: 100,
		FoulWins:         40,
		FoulTrials:       100,
		Alpha:            0.001,
	}

	result, err := NewEvaluator().Evaluate(input)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Decision != DecisionNoPreference {
		t.Errorf("Expected NO_CLEAR_PREFERENCE at alpha=0.001, got %s", result.Decision)
	}
}

func TestDecisionInput_Validate(t *testing.T) {
	valid := DecisionInput{ThreePointWins: 1, ThreePointTrials: 2, FoulWins: 0, FoulTrials: 2}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	var nilInput *DecisionInput
	if err := nilInput.Validate(); !errors.Is(err, ErrNilInput) {
		t.Errorf("expected ErrNilInput, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*DecisionInput)
		want   error
	}{
		{"zero three-point trials", func(in *DecisionInput) { in.ThreePointTrials = 0 }, ErrInvalidTrials},
		{"negative foul trials", func(in *DecisionInput) { in.FoulTrials = -1 }, ErrInvalidTrials},
		{"wins above trials", func(in *DecisionInput) { in.ThreePointWins = 3 }, ErrInvalidWins},
		{"negative wins", func(in *DecisionInput) { in.FoulWins = -1 }, ErrInvalidWins},
		{"alpha one", func(in *DecisionInput) { in.Alpha = 1 }, ErrInvalidAlpha},
		{"alpha negative", func(in *DecisionInput) { in.Alpha = -0.1 }, ErrInvalidAlpha},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if _, err := NewEvaluator().Evaluate(in); !errors.Is(err, tt.want) {
				t.Errorf("Evaluate: expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	report := &reporting.Report{
		StrategyMetrics: []reporting.StrategyMetricRow{
			{StrategyID: domain.StrategyTypeThreePoint, Trials: 100, Wins: 45, AveragePoints: 1.4},
			{StrategyID: domain.StrategyTypeFoul, Trials: 100, Wins: 30, AveragePoints: 0.6},
		},
	}

	input, err := NewBuilder(0).Build(report)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if input.ThreePointWins != 45 || input.FoulWins != 30 {
		t.Errorf("unexpected wins: %d/%d", input.ThreePointWins, input.FoulWins)
	}
	if input.ThreePointAvgPoints != 1.4 || input.FoulAvgPoints != 0.6 {
		t.Errorf("unexpected points: %f/%f", input.ThreePointAvgPoints, input.FoulAvgPoints)
	}
}

func TestBuilder_Build_MissingStrategy(t *testing.T) {
	report := &reporting.Report{
		StrategyMetrics: []reporting.StrategyMetricRow{
			{StrategyID: domain.StrategyTypeThreePoint, Trials: 100, Wins: 45},
		},
	}

	if _, err := NewBuilder(0).Build(report); !errors.Is(err, ErrStrategyNotFound) {
		t.Errorf("expected ErrStrategyNotFound, got %v", err)
	}
}

func TestRenderMarkdown(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins: 52, ThreePointTrials: 100, FoulWins: 50, FoulTrials: 100,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	md := RenderMarkdown(result)
	if !strings.Contains(md, "**Decision: NO_CLEAR_PREFERENCE**") {
		t.Errorf("missing decision line:\n%s", md)
	}
	if !strings.Contains(md, "| 3 | Statistical significance | p < 0.05 |") {
		t.Errorf("missing significance row:\n%s", md)
	}
	if !strings.Contains(md, "failed: Statistical significance") {
		t.Errorf("missing failure summary:\n%s", md)
	}
}

func TestRenderText(t *testing.T) {
	result, err := NewEvaluator().Evaluate(DecisionInput{
		ThreePointWins: 400, ThreePointTrials: 1000, FoulWins: 600, FoulTrials: 1000,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	text := RenderText(result)
	if !strings.HasPrefix(text, "Recommendation: FOUL\n") {
		t.Errorf("unexpected text:\n%s", text)
	}
	if !strings.Contains(Summary(result), "Foul: it wins 20.00 pp more often") {
		t.Errorf("unexpected summary: %s", Summary(result))
	}
}
