package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders strategy metrics as CSV string.
func RenderCSV(metrics []StrategyMetricRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("strategy_id,trials,wins,losses,win_percentage,win_pct_lower,win_pct_upper,")
	sb.WriteString("average_points,points_std_dev\n")

	// Rows
	for _, m := range metrics {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%d,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			m.StrategyID,
			m.Trials,
			m.Wins,
			m.Losses,
			m.WinPercentage,
			m.WinPctLower,
			m.WinPctUpper,
			m.AveragePoints,
			m.PointsStdDev,
		))
	}

	return sb.String()
}
