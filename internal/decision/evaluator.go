package decision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Evaluator compares the two strategies.
type Evaluator struct{}

// NewEvaluator creates a new decision evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate produces DecisionResult from DecisionInput.
// A strategy is recommended only if ALL criteria pass; otherwise NO_CLEAR_PREFERENCE.
func (e *Evaluator) Evaluate(input DecisionInput) (*DecisionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p1 := float64(input.ThreePointWins) / float64(input.ThreePointTrials)
	p2 := float64(input.FoulWins) / float64(input.FoulTrials)
	z, pValue := twoProportionZTest(input.ThreePointWins, input.ThreePointTrials, input.FoulWins, input.FoulTrials)
	alpha := input.alpha()

	result := &DecisionResult{
		ThreePointWinPct: p1 * 100,
		FoulWinPct:       p2 * 100,
		DifferencePct:    (p1 - p2) * 100,
		ZStatistic:       z,
		PValue:           pValue,
		Alpha:            alpha,
	}
	result.Criteria = e.evaluateCriteria(input, result)

	result.Decision = DecisionNoPreference
	if allPass(result.Criteria) {
		if result.DifferencePct > 0 {
			result.Decision = DecisionThreePoint
		} else {
			result.Decision = DecisionFoul
		}
	}

	return result, nil
}

// evaluateCriteria evaluates the 3 recommendation criteria.
func (e *Evaluator) evaluateCriteria(input DecisionInput, r *DecisionResult) []CriterionResult {
	criteria := make([]CriterionResult, 3)

	// 1. Both samples large enough for the normal approximation
	minTrials := min(input.ThreePointTrials, input.FoulTrials)
	criteria[0] = CriterionResult{
		Name:      "Sample size",
		Threshold: fmt.Sprintf(">= %d trials per strategy", MinTrials),
		Actual:    fmt.Sprintf("%d", minTrials),
		Pass:      minTrials >= MinTrials,
	}

	// 2. Win percentages differ
	criteria[1] = CriterionResult{
		Name:      "Win percentage gap",
		Threshold: "!= 0",
		Actual:    fmt.Sprintf("%+.2f pp", r.DifferencePct),
		Pass:      r.DifferencePct != 0,
	}

	// 3. Difference significant under the two-proportion z-test
	criteria[2] = CriterionResult{
		Name:      "Statistical significance",
		Threshold: fmt.Sprintf("p < %.2f", r.Alpha),
		Actual:    fmt.Sprintf("z=%.3f, p=%.4f", r.ZStatistic, r.PValue),
		Pass:      r.PValue < r.Alpha,
	}

	return criteria
}

// twoProportionZTest runs a pooled two-sided z-test of wins1/n1 against wins2/n2.
// Identical all-win or all-loss samples give z=0, p=1.
func twoProportionZTest(wins1, n1, wins2, n2 int) (z, pValue float64) {
	p1 := float64(wins1) / float64(n1)
	p2 := float64(wins2) / float64(n2)
	pooled := float64(wins1+wins2) / float64(n1+n2)

	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return 0, 1
	}

	z = (p1 - p2) / se
	pValue = 2 * distuv.UnitNormal.Survival(math.Abs(z))
	return z, pValue
}

func allPass(criteria []CriterionResult) bool {
	for _, c := range criteria {
		if !c.Pass {
			return false
		}
	}
	return true
}
