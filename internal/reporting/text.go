package reporting

import (
	"fmt"
	"strings"

	"endgame-lab/internal/domain"
)

// RenderBanner renders the score line shown before any input is read.
func RenderBanner(s domain.GameScenario) string {
	var sb strings.Builder
	sb.WriteString("Welcome to the Basketball End-Game Monte Carlo Simulation!\n\n")
	sb.WriteString(fmt.Sprintf("Current score: %s\n", s.ScoreLine()))
	sb.WriteString(fmt.Sprintf("Time left: %ds\n", s.ClockSeconds))
	return sb.String()
}

// RenderOpponent renders the randomly drawn opponent parameters.
func RenderOpponent(o domain.OpponentParameters) string {
	var sb strings.Builder
	sb.WriteString("Randomly generated opponent parameters:\n")
	sb.WriteString(fmt.Sprintf("Opponent's free-throw probability: %.2f\n", o.FreeThrowProbability))
	sb.WriteString(fmt.Sprintf("Opponent's 2-point probability: %.2f\n", o.TwoPointProbability))
	return sb.String()
}

// RenderText renders report results for a terminal.
func RenderText(r *Report) string {
	var sb strings.Builder

	sb.WriteString("Simulation Results:\n")
	for _, m := range r.StrategyMetrics {
		sb.WriteString(fmt.Sprintf("Win probability (%s): %.2f%%\n", StrategyLabel(m.StrategyID), m.WinPercentage))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Details (%d trials per strategy):\n", r.Trials))
	for _, m := range r.StrategyMetrics {
		sb.WriteString(fmt.Sprintf("  %-17s 95%% CI %.2f%%-%.2f%%, average points %.2f (sd %.2f)\n",
			StrategyLabel(m.StrategyID)+":", m.WinPctLower, m.WinPctUpper, m.AveragePoints, m.PointsStdDev))
	}

	return sb.String()
}
