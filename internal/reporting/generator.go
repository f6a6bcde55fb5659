package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/storage"
)

// ErrNoAggregates is returned when a run has no stored aggregates.
var ErrNoAggregates = errors.New("no aggregates stored for run")

// Generator produces reports from stored data.
type Generator struct {
	runStore       storage.RunStore
	aggregateStore storage.StrategyAggregateStore
	now            func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(runStore storage.RunStore, aggStore storage.StrategyAggregateStore) *Generator {
	return &Generator{
		runStore:       runStore,
		aggregateStore: aggStore,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces the report of one run.
func (g *Generator) Generate(ctx context.Context, runID string) (*Report, error) {
	run, err := g.runStore.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	aggs, err := g.aggregateStore.GetByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, ErrNoAggregates
	}

	return &Report{
		GeneratedAt:         g.now(),
		RunID:               run.RunID,
		Trials:              run.Trials,
		Scenario:            run.Scenario,
		User:                run.User,
		Opponent:            run.Opponent,
		StrategyMetrics:     g.generateStrategyMetrics(aggs),
		ResolutionBreakdown: g.generateResolutionBreakdown(aggs),
	}, nil
}

// generateStrategyMetrics builds sorted rows from aggregates.
func (g *Generator) generateStrategyMetrics(aggs []*domain.StrategyAggregate) []StrategyMetricRow {
	rows := make([]StrategyMetricRow, len(aggs))
	for i, agg := range aggs {
		rows[i] = StrategyMetricRow{
			StrategyID:    agg.StrategyID,
			Trials:        agg.Trials,
			Wins:          agg.Wins,
			Losses:        agg.Losses,
			WinPercentage: agg.WinPercentage,
			WinPctLower:   agg.WinPctLower,
			WinPctUpper:   agg.WinPctUpper,
			AveragePoints: agg.AveragePoints,
			PointsStdDev:  agg.PointsStdDev,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return strategyOrder(rows[i].StrategyID) < strategyOrder(rows[j].StrategyID)
	})
	return rows
}

// generateResolutionBreakdown lists every resolution for every strategy, zero counts included.
func (g *Generator) generateResolutionBreakdown(aggs []*domain.StrategyAggregate) []ResolutionRow {
	sorted := make([]*domain.StrategyAggregate, len(aggs))
	copy(sorted, aggs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strategyOrder(sorted[i].StrategyID) < strategyOrder(sorted[j].StrategyID)
	})

	rows := make([]ResolutionRow, 0, len(sorted)*len(domain.Resolutions))
	for _, agg := range sorted {
		for _, res := range domain.Resolutions {
			count := agg.ResolutionCount(res)
			var share float64
			if agg.Trials > 0 {
				share = float64(count) / float64(agg.Trials) * 100
			}
			rows = append(rows, ResolutionRow{
				StrategyID: agg.StrategyID,
				Resolution: res,
				Count:      count,
				SharePct:   share,
			})
		}
	}
	return rows
}

// strategyOrder ranks known strategies first, in report order.
func strategyOrder(strategyID string) int {
	for i, id := range domain.StrategyTypes {
		if id == strategyID {
			return i
		}
	}
	return len(domain.StrategyTypes)
}
