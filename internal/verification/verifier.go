// Package verification replays seeded simulation runs and checks the stored
// aggregates are reproduced exactly.
package verification

import (
	"context"
	"math"
	"reflect"

	"endgame-lab/internal/domain"
)

// FloatTolerance is the tolerance for float64 comparisons.
const FloatTolerance = 1e-9

// FieldDivergence represents a mismatch between stored and replayed values.
type FieldDivergence struct {
	Field    string      // field name
	Expected interface{} // stored value
	Actual   interface{} // replayed value
}

// VerificationResult contains the result of verifying one strategy aggregate.
type VerificationResult struct {
	StrategyID  string            // verified strategy
	Match       bool              // true if all fields match
	Divergences []FieldDivergence // list of divergent fields
}

// VerificationReport contains results for one run.
type VerificationReport struct {
	RunID               string
	Seed                uint64
	TotalStrategies     int                  // aggregates verified
	MatchedStrategies   int                  // aggregates reproduced exactly
	DivergentStrategies int                  // aggregates with divergences
	Results             []VerificationResult // individual results
}

// Reproducible reports whether every aggregate matched.
func (r *VerificationReport) Reproducible() bool {
	return r.DivergentStrategies == 0 && r.TotalStrategies > 0
}

// Verifier verifies stored runs.
type Verifier interface {
	// VerifyRun replays a stored run from its seed and compares every aggregate.
	VerifyRun(ctx context.Context, runID string) (*VerificationReport, error)
}

// CompareAggregates compares two aggregates and returns divergences.
// RunID is ignored; a replay always gets a fresh one.
func CompareAggregates(stored, replayed *domain.StrategyAggregate) []FieldDivergence {
	var divergences []FieldDivergence

	add := func(field string, expected, actual interface{}) {
		divergences = append(divergences, FieldDivergence{Field: field, Expected: expected, Actual: actual})
	}

	if stored.StrategyID != replayed.StrategyID {
		add("StrategyID", stored.StrategyID, replayed.StrategyID)
	}

	// Counts
	if stored.Trials != replayed.Trials {
		add("Trials", stored.Trials, replayed.Trials)
	}
	if stored.Wins != replayed.Wins {
		add("Wins", stored.Wins, replayed.Wins)
	}
	if stored.Losses != replayed.Losses {
		add("Losses", stored.Losses, replayed.Losses)
	}

	// Derived values
	if !floatEquals(stored.WinPercentage, replayed.WinPercentage) {
		add("WinPercentage", stored.WinPercentage, replayed.WinPercentage)
	}
	if !floatEquals(stored.WinPctLower, replayed.WinPctLower) {
		add("WinPctLower", stored.WinPctLower, replayed.WinPctLower)
	}
	if !floatEquals(stored.WinPctUpper, replayed.WinPctUpper) {
		add("WinPctUpper", stored.WinPctUpper, replayed.WinPctUpper)
	}
	if !floatEquals(stored.AveragePoints, replayed.AveragePoints) {
		add("AveragePoints", stored.AveragePoints, replayed.AveragePoints)
	}
	if !floatEquals(stored.PointsStdDev, replayed.PointsStdDev) {
		add("PointsStdDev", stored.PointsStdDev, replayed.PointsStdDev)
	}

	// Resolution counts; a missing key equals zero
	for _, res := range domain.Resolutions {
		if stored.ResolutionCount(res) != replayed.ResolutionCount(res) {
			add("Resolutions["+res+"]", stored.ResolutionCount(res), replayed.ResolutionCount(res))
		}
	}
	if !reflect.DeepEqual(extraResolutions(stored), extraResolutions(replayed)) {
		add("Resolutions", stored.Resolutions, replayed.Resolutions)
	}

	return divergences
}

// extraResolutions returns non-zero counts of resolutions outside domain.Resolutions.
func extraResolutions(a *domain.StrategyAggregate) map[string]int {
	known := make(map[string]struct{}, len(domain.Resolutions))
	for _, res := range domain.Resolutions {
		known[res] = struct{}{}
	}
	extra := make(map[string]int)
	for res, count := range a.Resolutions {
		if _, ok := known[res]; !ok && count != 0 {
			extra[res] = count
		}
	}
	return extra
}

// floatEquals compares two float64 values within FloatTolerance.
// NaN equals NaN.
func floatEquals(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= FloatTolerance
}
