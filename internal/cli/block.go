package cli

import (
	"fmt"
	"sort"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/utils"
	"github.com/julianstephens/timecraft/internal/validation"
)

type BlockAddCmd struct {
	Title    string `arg:"" help:"Block title."`
	Start    int    `short:"s" help:"Start hour (0-24)." required:""`
	End      int    `short:"e" help:"End hour (1-25); values past 24 run into the next morning." required:""`
	Type     string `short:"t" help:"Block type (fixed|life|task|free)." default:"fixed"`
	Category string `short:"c" help:"Category (work|health|relationships|growth|sleep|exercise|free); defaults from the type."`
	Dates    string `short:"d" help:"Comma-separated target dates (YYYY-MM-DD); defaults to today."`
	Task     string `help:"Linked task id (for task blocks)."`
}

func (c *BlockAddCmd) Run(ctx *Context) error {
	return upsert(ctx, "", c.Title, c.Type, c.Category, c.Start, c.End, c.Dates, c.Task)
}

type BlockEditCmd struct {
	ID       string `arg:"" help:"Id of the block to replace."`
	Title    string `short:"t" help:"Block title." required:""`
	Start    int    `short:"s" help:"Start hour (0-24)." required:""`
	End      int    `short:"e" help:"End hour (1-25)." required:""`
	Type     string `help:"Block type (fixed|life|task|free)." default:"fixed"`
	Category string `short:"c" help:"Category; defaults from the type."`
	Dates    string `short:"d" help:"Comma-separated target dates; defaults to today."`
	Task     string `help:"Linked task id."`
}

func (c *BlockEditCmd) Run(ctx *Context) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}
	if !current.HasBlock(c.ID) {
		return fmt.Errorf("block not found: %s", c.ID)
	}
	return upsert(ctx, c.ID, c.Title, c.Type, c.Category, c.Start, c.End, c.Dates, c.Task)
}

// upsert runs the shared add/edit path. A locked cycle surfaces as a
// notice rather than a failure.
func upsert(ctx *Context, editID, title, blockType, category string, start, end int, dates, linkedTask string) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	targetDates, err := parseDates(dates)
	if err != nil {
		return err
	}

	draft := validation.BlockDraft{
		Title:      title,
		Type:       constants.BlockType(blockType),
		Category:   constants.Category(category),
		StartH:     start,
		EndH:       end,
		LinkedTask: linkedTask,
	}

	err = ctx.Scheduler.UpsertBlock(&current, draft, editID, targetDates)
	if apperrors.Is(err, apperrors.ErrCycleLocked) {
		fmt.Println(warnStyle.Render("The cycle is locked. Unlock it with 'timecraft lock' to edit blocks."))
		return nil
	}
	if err != nil {
		return err
	}

	verb := "Added"
	if editID != "" {
		verb = "Updated"
	}
	fmt.Printf("%s %q on %d day(s).\n", verb, title, len(targetDates))
	return nil
}

type BlockDeleteCmd struct {
	ID string `arg:"" help:"Id of the block to delete."`
}

func (c *BlockDeleteCmd) Run(ctx *Context) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	err = ctx.Scheduler.DeleteBlock(&current, c.ID)
	if apperrors.Is(err, apperrors.ErrCycleLocked) {
		fmt.Println(warnStyle.Render("The cycle is locked. Unlock it with 'timecraft lock' to edit blocks."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Deleted block %s.\n", c.ID)
	return nil
}

type BlockListCmd struct {
	Date string `short:"d" help:"Show a single date (YYYY-MM-DD) instead of the whole cycle."`
}

func (c *BlockListCmd) Run(ctx *Context) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	days, err := utils.CycleDays(current.CycleStartDate)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n\n", headerStyle.Render(cycleLabel(current)), statusBadge(current.Status))

	for _, day := range days {
		if c.Date != "" && day.ISO != c.Date {
			continue
		}
		blocks := current.BlocksForDay(day.ISO)
		sort.SliceStable(blocks, func(i, j int) bool {
			return blocks[i].StartH < blocks[j].StartH
		})

		fmt.Printf("%s %d/%d\n", day.DayName, day.Month, day.Day)
		if len(blocks) == 0 {
			fmt.Println(subtleStyle.Render("  (no blocks)"))
			continue
		}
		for _, b := range blocks {
			fmt.Printf("  %-12s %-24s %s  %s\n",
				blockTimeRange(b), b.Title, subtleStyle.Render(string(b.Category)), subtleStyle.Render(b.ID))
		}
	}
	return nil
}
