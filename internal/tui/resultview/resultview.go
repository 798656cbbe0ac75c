// ABOUTME: Terminal rendering of an authentication verdict
// ABOUTME: Mirrors the HTML alert fragment with lipgloss panels

package resultview

import (
	"fmt"
	"math"
	"strings"

	"github.com/markalston/facerec-auth/internal/client"
	"github.com/markalston/facerec-auth/internal/render"
	"github.com/markalston/facerec-auth/internal/tui/icons"
	"github.com/markalston/facerec-auth/internal/tui/styles"
	"github.com/markalston/facerec-auth/internal/tui/widgets"
)

const barWidth = 20

// Render draws the verdict panel. width <= 0 lets the panel size itself.
// Fields the reply did not carry render blank.
func Render(result client.AuthResult, width int) string {
	ok := result.Succeeded()
	level := widgets.VerdictLevel(ok)

	var sb strings.Builder
	sb.WriteString(widgets.StatusText("Authentication", level))
	sb.WriteString(" " + widgets.VerdictBadge(result.Result.String(), ok))
	sb.WriteString("\n\n")

	sb.WriteString(field(icons.User, "Employee", result.EmployeeName.String()))

	confidence := ""
	if result.Confidence.Present() {
		confidence = render.FormatConfidence(result.Confidence.Number()) + "%"
	}
	sb.WriteString(field(icons.Gauge, "Confidence", confidence))
	if score := result.Confidence.Number(); !math.IsNaN(score) {
		sb.WriteString("  " + widgets.ConfidenceBar(score, ok, barWidth) + "\n")
	}

	processing := ""
	if result.ProcessingTime.Present() {
		processing = result.ProcessingTime.String() + "ms"
	}
	sb.WriteString(field(icons.Timer, "Processing Time", processing))

	if result.Timestamp.Present() {
		sb.WriteString(field(icons.Clock, "Timestamp", result.Timestamp.String()))
	}
	if result.Error.Present() {
		sb.WriteString(field(icons.Info, "Error", result.Error.String()))
	}

	style := styles.Alert(ok)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.TrimRight(sb.String(), "\n"))
}

// Empty draws the panel shown before any verdict arrives
func Empty(width int) string {
	style := styles.Panel
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(widgets.StatusText("No authentication yet", widgets.StatusInfo))
}

func field(icon icons.Icon, label, value string) string {
	return fmt.Sprintf("%s %s %s\n",
		icon.String(),
		styles.LabelStyle.Render(label+":"),
		styles.ValueStyle.Render(value),
	)
}
