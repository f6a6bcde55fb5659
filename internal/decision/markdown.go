package decision

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders DecisionResult as Markdown string.
func RenderMarkdown(result *DecisionResult) string {
	var sb strings.Builder

	sb.WriteString("## Recommendation\n\n")
	sb.WriteString(fmt.Sprintf("**Decision: %s**\n\n", result.Decision))

	sb.WriteString("| # | Criterion | Threshold | Actual | Pass |\n")
	sb.WriteString("|---|-----------|-----------|--------|------|\n")
	for i, c := range result.Criteria {
		passStr := "PASS"
		if !c.Pass {
			passStr = "FAIL"
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			i+1, c.Name, c.Threshold, c.Actual, passStr))
	}
	sb.WriteString("\n")
	sb.WriteString(Summary(result))
	sb.WriteString("\n")

	return sb.String()
}

// RenderText renders DecisionResult for a terminal.
func RenderText(result *DecisionResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Decision))
	for _, c := range result.Criteria {
		mark := "ok  "
		if !c.Pass {
			mark = "FAIL"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s: %s (want %s)\n", mark, c.Name, c.Actual, c.Threshold))
	}
	return sb.String()
}

// Summary explains the decision in one sentence.
func Summary(result *DecisionResult) string {
	switch result.Decision {
	case DecisionThreePoint:
		return fmt.Sprintf("Attempt the three: it wins %.2f pp more often than fouling.\n", result.DifferencePct)
	case DecisionFoul:
		return fmt.Sprintf("Foul: it wins %.2f pp more often than attempting the three.\n", -result.DifferencePct)
	default:
		var failed []string
		for _, c := range result.Criteria {
			if !c.Pass {
				failed = append(failed, c.Name)
			}
		}
		return fmt.Sprintf("No clear preference (failed: %s).\n", strings.Join(failed, ", "))
	}
}
