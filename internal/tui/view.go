package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.viewHeader(),
		m.viewWeek(),
		m.viewBlocks(),
		m.viewSummary(),
	}

	if tracking.ReviewNudgeDue(m.cycle, utils.TodayISO()) {
		sections = append(sections, nudgeStyle.Render("Cycle complete. Run 'timecraft review' to close it out."))
	}
	if m.err != nil {
		sections = append(sections, behindStyle.Render(m.err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	label := fmt.Sprintf("Week %d", m.cycle.CycleNumber)
	return fmt.Sprintf("%s  %s\n", titleStyle.Render(label), subtleStyle.Render(m.viewDate))
}

// viewWeek renders one completion dot per cycle day, marking the viewed day.
func (m Model) viewWeek() string {
	days, err := utils.CycleDays(m.cycle.CycleStartDate)
	if err != nil {
		return ""
	}

	today := utils.TodayISO()
	var b strings.Builder
	for _, day := range days {
		summary := tracking.SummarizeDay(m.cycle, m.trackings, day.ISO)
		tier := tracking.CompletionTier(summary.TotalBlocks, summary.Completed, day.ISO <= today)

		dot := m.tierDot(tier)
		if day.ISO == m.viewDate {
			dot = selectedStyle.Render(day.DayName[:1])
		}
		b.WriteString(dot)
		b.WriteString(" ")
	}
	return b.String() + "\n"
}

func (m Model) viewBlocks() string {
	blocks := m.dayBlocks()
	if len(blocks) == 0 {
		return subtleStyle.Render("No blocks on this day.") + "\n"
	}

	var b strings.Builder
	for i, block := range blocks {
		line := fmt.Sprintf("%s %d:00-%d:00  %-24s %s",
			m.statusIcon(m.blockStatus(block)),
			block.StartH, utils.DisplayHour(block.EndH),
			block.Title,
			subtleStyle.Render(string(block.Category)),
		)
		if i == m.cursor {
			line = selectedStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewSummary() string {
	summary := tracking.SummarizeDay(m.cycle, m.trackings, m.viewDate)
	line := fmt.Sprintf("%d/%d completed", summary.Completed, summary.TotalBlocks)
	if summary.Tracked {
		line += fmt.Sprintf(", %d min recorded (%s vs plan)",
			summary.TotalActual, tracking.DiffString(summary.TotalActual, summary.TotalEstimated))
	}
	return subtleStyle.Render(line) + "\n"
}

func (m Model) tierDot(tier tracking.Tier) string {
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

func (m Model) statusIcon(status constants.BlockStatus) string {
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
