// Package observability provides Prometheus metrics for simulation runs.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"endgame-lab/internal/domain"
)

// Run status label values.
const (
	StatusOK        = "ok"
	StatusInvalid   = "invalid"
	StatusCancelled = "cancelled"
	StatusFailed    = "failed"
)

// Metrics holds all Prometheus metrics of the simulator.
// Every instance owns its registry, so several can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// Run metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram

	// Trial metrics
	TrialsSimulated  *prometheus.CounterVec
	TrialResolutions *prometheus.CounterVec

	// Result metrics
	WinPercentage *prometheus.GaugeVec
	AveragePoints *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "endgame_lab"
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Run metrics
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Total number of simulation runs by status",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "run_duration_seconds",
			Help:      "Simulation run duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),

		// Trial metrics
		TrialsSimulated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "trials_total",
			Help:      "Total number of trials simulated by strategy",
		}, []string{"strategy"}),
		TrialResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "trial_resolutions_total",
			Help:      "Total number of trials by strategy and deciding event",
		}, []string{"strategy", "resolution"}),

		// Result metrics
		WinPercentage: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "result",
			Name:      "win_percentage",
			Help:      "Win percentage of the last run by strategy",
		}, []string{"strategy"}),
		AveragePoints: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "result",
			Name:      "average_points",
			Help:      "Average points scored in the last run by strategy",
		}, []string{"strategy"}),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRun records a finished run. Nil-safe.
func (m *Metrics) RecordRun(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.Observe(d.Seconds())
}

// RecordAggregate records the summary of one strategy. Nil-safe.
func (m *Metrics) RecordAggregate(agg *domain.StrategyAggregate) {
	if m == nil || agg == nil {
		return
	}
	m.TrialsSimulated.WithLabelValues(agg.StrategyID).Add(float64(agg.Trials))
	for res, count := range agg.Resolutions {
		m.TrialResolutions.WithLabelValues(agg.StrategyID, res).Add(float64(count))
	}
	m.WinPercentage.WithLabelValues(agg.StrategyID).Set(agg.WinPercentage)
	m.AveragePoints.WithLabelValues(agg.StrategyID).Set(agg.AveragePoints)
}

// WriteToTextfile writes all metrics in the text exposition format,
// for pickup by the node_exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
