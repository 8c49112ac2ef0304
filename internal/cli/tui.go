package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/timecraft/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}
	trackings, err := ctx.Store.Trackings()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Tracker, current, trackings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
