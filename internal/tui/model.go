package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

// Model is the tracking day navigator: one day of the current cycle at a
// time, with the week's completion tiers across the top.
type Model struct {
	tracker   *tracking.Aggregator
	cycle     models.Cycle
	trackings models.Trackings

	viewDate string
	cursor   int
	keys     KeyMap
	help     help.Model

	width    int
	height   int
	quitting bool
	err      error
}

func NewModel(tracker *tracking.Aggregator, c models.Cycle, trackings models.Trackings) Model {
	viewDate := utils.TodayISO()
	if !utils.WithinCycle(viewDate, c.CycleStartDate, c.CycleEndDate) {
		viewDate = c.CycleStartDate
	}

	return Model{
		tracker:   tracker,
		cycle:     c,
		trackings: trackings,
		viewDate:  viewDate,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// dayBlocks returns the viewed day's blocks in start-hour order.
func (m Model) dayBlocks() []models.Block {
	blocks := m.cycle.BlocksForDay(m.viewDate)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartH < blocks[j].StartH
	})
	return blocks
}

// blockStatus resolves a block's effective status: the tracked entry wins
// over the block's own field.
func (m Model) blockStatus(b models.Block) constants.BlockStatus {
	if entry, ok := m.trackings.ForDay(m.viewDate)[b.ID]; ok {
		return entry.Status
	}
	if b.Status != "" {
		return b.Status
	}
	return constants.BlockStatusPending
}

// nextStatus is the enter-key rotation order.
func nextStatus(s constants.BlockStatus) constants.BlockStatus {
	switch s {
	case constants.BlockStatusPending:
		return constants.BlockStatusCompleted
	case constants.BlockStatusCompleted:
		return constants.BlockStatusSkipped
	case constants.BlockStatusSkipped:
		return constants.BlockStatusInProgress
	default:
		return constants.BlockStatusPending
	}
}
