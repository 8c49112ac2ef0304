package cli

import (
	"fmt"

	"github.com/julianstephens/timecraft/internal/constants"
)

type LockCmd struct{}

func (c *LockCmd) Run(ctx *Context) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	if err := ctx.Lifecycle.ToggleLock(&current); err != nil {
		return err
	}

	if current.Status == constants.CycleStatusLocked {
		fmt.Printf("%s is now %s. Blocks are frozen until you unlock.\n", cycleLabel(current), statusBadge(current.Status))
	} else {
		fmt.Printf("%s is back to %s. Blocks can be edited again.\n", cycleLabel(current), statusBadge(current.Status))
	}
	return nil
}
