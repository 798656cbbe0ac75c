// ABOUTME: Confidence bar for recognition scores
// ABOUTME: Fills proportionally to the score, colored by verdict

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width       int
	FilledColor lipgloss.Color
	EmptyColor  lipgloss.Color
}

// DefaultProgressBarConfig returns sensible defaults
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:       20,
		FilledColor: lipgloss.Color("#10B981"), // Green
		EmptyColor:  lipgloss.Color("#374151"), // Dark gray
	}
}

// ProgressBar renders a bracketed bar filled to percent (0-100)
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}

	filled := FilledCells(percent, config.Width)

	filledStyle := lipgloss.NewStyle().Foreground(config.FilledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(config.EmptyColor)

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	bar.WriteString(emptyStyle.Render(strings.Repeat("░", config.Width-filled)))
	bar.WriteString("]")
	return bar.String()
}

// ConfidenceBar renders a 0-1 score colored by the verdict
func ConfidenceBar(confidence float64, succeeded bool, width int) string {
	config := DefaultProgressBarConfig()
	config.Width = width
	if !succeeded {
		config.FilledColor = BadgeCritBg
	}
	return ProgressBar(confidence*100, config)
}

// FilledCells returns how many of width cells percent fills, clamped
func FilledCells(percent float64, width int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}
