package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.PrevDay):
			m.shiftDay(-1)
		case key.Matches(msg, m.keys.NextDay):
			m.shiftDay(1)
		case key.Matches(msg, m.keys.Today):
			today := utils.TodayISO()
			if utils.WithinCycle(today, m.cycle.CycleStartDate, m.cycle.CycleEndDate) {
				m.viewDate = today
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.dayBlocks())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
		}
	}

	return m, nil
}

func (m *Model) shiftDay(delta int) {
	next, moved := tracking.ClampViewDate(m.cycle, m.viewDate, delta)
	if moved {
		m.viewDate = next
		m.cursor = 0
	}
}

// toggleSelected rotates the selected block's status and persists the
// tracking entry, keeping any previously recorded minutes and ratings.
func (m *Model) toggleSelected() {
	blocks := m.dayBlocks()
	if m.cursor >= len(blocks) {
		return
	}
	block := blocks[m.cursor]

	outcome := tracking.Outcome{Status: nextStatus(m.blockStatus(block))}
	if prev, ok := m.trackings.ForDay(m.viewDate)[block.ID]; ok {
		outcome.ActualMinutes = prev.ActualMinutes
		outcome.Focus = prev.Focus
		outcome.Energy = prev.Energy
		outcome.Note = prev.Note
	}

	entry, err := m.tracker.RecordOutcome(m.viewDate, block.ID, outcome)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.trackings.Put(m.viewDate, block.ID, entry)
}
