package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# End-Game Simulation Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Run: %s | Trials per strategy: %d\n\n", r.RunID, r.Trials))

	// Scenario
	sb.WriteString("## Scenario\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Score | %s |\n", r.Scenario.ScoreLine()))
	sb.WriteString(fmt.Sprintf("| Clock (s) | %d |\n", r.Scenario.ClockSeconds))
	sb.WriteString(fmt.Sprintf("| 3-point probability | %.2f |\n", r.User.ThreePointProbability))
	sb.WriteString(fmt.Sprintf("| 2-point probability | %.2f |\n", r.User.TwoPointProbability))
	sb.WriteString(fmt.Sprintf("| Overtime win probability | %.2f |\n", r.User.OvertimeWinProbability))
	sb.WriteString(fmt.Sprintf("| Offensive rebound probability | %.2f |\n", r.User.OffensiveReboundProbability))
	sb.WriteString(fmt.Sprintf("| Opponent free-throw probability | %.2f |\n", r.Opponent.FreeThrowProbability))
	sb.WriteString(fmt.Sprintf("| Opponent 2-point probability | %.2f |\n", r.Opponent.TwoPointProbability))
	sb.WriteString("\n")

	// Strategy Metrics
	sb.WriteString("## Strategy Metrics\n\n")
	if len(r.StrategyMetrics) > 0 {
		sb.WriteString("| Strategy | Trials | Wins | Losses | Win% | CI Low | CI High | Avg Points | Points SD |\n")
		sb.WriteString("|----------|--------|------|--------|------|--------|---------|------------|-----------|\n")
		for _, m := range r.StrategyMetrics {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %.2f | %.2f | %.2f | %.4f | %.4f |\n",
				m.StrategyID, m.Trials, m.Wins, m.Losses,
				m.WinPercentage, m.WinPctLower, m.WinPctUpper, m.AveragePoints, m.PointsStdDev))
		}
	} else {
		sb.WriteString("No strategy metrics available.\n")
	}
	sb.WriteString("\n")

	// Resolution Breakdown
	sb.WriteString("## Resolution Breakdown\n\n")
	if len(r.ResolutionBreakdown) > 0 {
		sb.WriteString("| Strategy | Resolution | Trials | Share% |\n")
		sb.WriteString("|----------|------------|--------|--------|\n")
		for _, row := range r.ResolutionBreakdown {
			if row.Count == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.2f |\n",
				row.StrategyID, row.Resolution, row.Count, row.SharePct))
		}
	} else {
		sb.WriteString("No resolution data available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
