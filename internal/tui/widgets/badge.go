// ABOUTME: Verdict badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges and verdict icons

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/facerec-auth/internal/tui/icons"
)

// StatusLevel represents the outcome shown by a badge
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusCritical
	StatusInfo
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = BadgeOKBg, BadgeOKFg
	case StatusCritical:
		bg, fg = BadgeCritBg, BadgeCritFg
	default:
		bg, fg = BadgeInfoBg, BadgeInfoFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// VerdictLevel maps a verdict to its level. Only SUCCESS is OK.
func VerdictLevel(succeeded bool) StatusLevel {
	if succeeded {
		return StatusOK
	}
	return StatusCritical
}

// VerdictBadge renders the verdict text as a badge
func VerdictBadge(result string, succeeded bool) string {
	if result == "" {
		result = "--"
	}
	return Badge(result, VerdictLevel(succeeded))
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	switch level {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(BadgeOKBg).Render(icons.CheckOK.String())
	case StatusCritical:
		return lipgloss.NewStyle().Foreground(BadgeCritBg).Render(icons.Critical.String())
	default:
		return lipgloss.NewStyle().Foreground(BadgeInfoBg).Render(icons.Info.String())
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	icon := StatusIcon(level)

	var color lipgloss.Color
	switch level {
	case StatusOK:
		color = BadgeOKBg
	case StatusCritical:
		color = BadgeCritBg
	default:
		color = BadgeInfoBg
	}

	textStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s", icon, textStyle.Render(text))
}
