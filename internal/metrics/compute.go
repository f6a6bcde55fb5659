package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"endgame-lab/internal/domain"
)

// ConfidenceLevel is the two-sided level of the reported win interval.
const ConfidenceLevel = 0.95

// computeWinPercentage returns wins / trials * 100.
// Caller guarantees trials > 0.
func computeWinPercentage(wins, trials int) float64 {
	return float64(wins) / float64(trials) * 100
}

// computeAveragePoints returns totalPoints / trials.
// Caller guarantees trials > 0.
func computeAveragePoints(totalPoints, trials int) float64 {
	return float64(totalPoints) / float64(trials)
}

// computePointsStdDev returns the unbiased standard deviation of points per trial
// from a histogram of points -> count. Zero for fewer than two trials.
func computePointsStdDev(histogram map[int]int, trials int) float64 {
	if trials < 2 || len(histogram) == 0 {
		return 0
	}

	// Sort keys for deterministic summation order
	keys := make([]int, 0, len(histogram))
	for k := range histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	values := make([]float64, len(keys))
	weights := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = float64(k)
		weights[i] = float64(histogram[k])
	}

	_, std := stat.MeanStdDev(values, weights)
	if math.IsNaN(std) {
		return 0
	}
	return std
}

// zScore returns the standard normal quantile for a two-sided confidence level.
func zScore(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}

// computeWilsonInterval returns the Wilson score interval for wins/trials, in percent.
// Caller guarantees trials > 0.
func computeWilsonInterval(wins, trials int, level float64) (lower, upper float64) {
	n := float64(trials)
	p := float64(wins) / n
	z := zScore(level)
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom

	lower = math.Max(0, center-half) * 100
	upper = math.Min(1, center+half) * 100
	return lower, upper
}

// summarize builds an aggregate from accumulated counters.
func summarize(acc *Accumulator) *domain.StrategyAggregate {
	lower, upper := computeWilsonInterval(acc.wins, acc.trials, ConfidenceLevel)

	resolutions := make(map[string]int, len(acc.resolutions))
	for k, v := range acc.resolutions {
		resolutions[k] = v
	}

	return &domain.StrategyAggregate{
		StrategyID:    acc.strategyID,
		Trials:        acc.trials,
		Wins:          acc.wins,
		Losses:        acc.trials - acc.wins,
		WinPercentage: computeWinPercentage(acc.wins, acc.trials),
		WinPctLower:   lower,
		WinPctUpper:   upper,
		AveragePoints: computeAveragePoints(acc.totalPoints, acc.trials),
		PointsStdDev:  computePointsStdDev(acc.pointsHistogram, acc.trials),
		Resolutions:   resolutions,
	}
}
