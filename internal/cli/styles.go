package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/tracking"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	behindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	badgeStyles = map[constants.CycleStatus]lipgloss.Style{
		constants.CycleStatusDraft:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
		constants.CycleStatusLocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1).Bold(true),
		constants.CycleStatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Padding(0, 1),
	}
)

func statusBadge(status constants.CycleStatus) string {
	style, ok := badgeStyles[status]
	if !ok {
		style = badgeStyles[constants.CycleStatusDraft]
	}
	return style.Render(string(status))
}

func tierDot(tier tracking.Tier) string {
	switch tier {
	case tracking.TierGood:
		return goodStyle.Render("●")
	case tracking.TierPartial:
		return warnStyle.Render("●")
	case tracking.TierBehind:
		return behindStyle.Render("●")
	default:
		return subtleStyle.Render("○")
	}
}

func statusIcon(status constants.BlockStatus) string {
	switch status {
	case constants.BlockStatusCompleted:
		return goodStyle.Render("✓")
	case constants.BlockStatusInProgress:
		return warnStyle.Render("…")
	case constants.BlockStatusSkipped:
		return subtleStyle.Render("»")
	default:
		return subtleStyle.Render("○")
	}
}
