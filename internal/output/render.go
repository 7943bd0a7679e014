package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 0-100 score.
// Example: "████████████████░░░░ 80/100"
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", scoreStyle(score).Render(bar),
		StyleMuted.Render(fmt.Sprintf("%d/100", score)))
}

// FactorBar renders a compact bar for a 1-10 factor score.
// Example: "▰▰▰▰▰▰▰▱▱▱ 7/10"
func FactorBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	bar := strings.Repeat("▰", score) + strings.Repeat("▱", 10-score)
	return fmt.Sprintf("%s %s", scoreStyle(score*10).Render(bar),
		StyleMuted.Render(fmt.Sprintf("%d/10", score)))
}

// scoreStyle picks the success/warning/error style for a 0-100 value.
func scoreStyle(score int) interface{ Render(...string) string } {
	switch {
	case score >= 70:
		return StyleSuccess
	case score >= 40:
		return StyleWarning
	default:
		return StyleError
	}
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
