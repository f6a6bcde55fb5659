package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endgame-lab/internal/domain"
)

func TestMetrics_RecordAggregate(t *testing.T) {
	m := NewMetrics("")

	m.RecordAggregate(&domain.StrategyAggregate{
		StrategyID:    domain.StrategyTypeFoul,
		Trials:        100,
		WinPercentage: 31,
		AveragePoints: 0.62,
		Resolutions: map[string]int{
			domain.ResolutionTwoPointMake: 25,
			domain.ResolutionOvertimeWin:  6,
			domain.ResolutionOvertimeLoss: 69,
		},
	})

	assert.Equal(t, 100.0, testutil.ToFloat64(m.TrialsSimulated.WithLabelValues(domain.StrategyTypeFoul)))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.TrialResolutions.WithLabelValues(domain.StrategyTypeFoul, domain.ResolutionTwoPointMake)))
	assert.Equal(t, 31.0, testutil.ToFloat64(m.WinPercentage.WithLabelValues(domain.StrategyTypeFoul)))
	assert.Equal(t, 0.62, testutil.ToFloat64(m.AveragePoints.WithLabelValues(domain.StrategyTypeFoul)))
}

func TestMetrics_RecordRun(t *testing.T) {
	m := NewMetrics("test")

	m.RecordRun(StatusOK, 20*time.Millisecond)
	m.RecordRun(StatusOK, 30*time.Millisecond)
	m.RecordRun(StatusCancelled, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(StatusCancelled)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RunDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRun(StatusOK, time.Second)
		m.RecordAggregate(&domain.StrategyAggregate{StrategyID: domain.StrategyTypeFoul})
	})
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a := NewMetrics("")
	b := NewMetrics("")

	a.RecordRun(StatusOK, time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RunsTotal.WithLabelValues(StatusOK)))
}

func TestMetrics_WriteToTextfile(t *testing.T) {
	m := NewMetrics("")
	m.RecordRun(StatusOK, time.Millisecond)

	path := filepath.Join(t.TempDir(), "endgame.prom")
	require.NoError(t, m.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `endgame_lab_simulation_runs_total{status="ok"} 1`)
}
