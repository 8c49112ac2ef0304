package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

type TrackCmd struct {
	Block string `short:"b" help:"Block id to record; prompts from the day's blocks when omitted."`
	Date  string `short:"d" help:"Date to record for (YYYY-MM-DD); defaults to today."`
}

func (c *TrackCmd) Run(ctx *Context) error {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.TodayISO()
	}
	if !utils.WithinCycle(date, current.CycleStartDate, current.CycleEndDate) {
		return fmt.Errorf("date %s is outside the current cycle (%s - %s)", date, current.CycleStartDate, current.CycleEndDate)
	}

	dayBlocks := current.BlocksForDay(date)
	if len(dayBlocks) == 0 {
		fmt.Println(subtleStyle.Render("No blocks on this day. Add some with 'timecraft block add'."))
		return nil
	}

	blockID := c.Block
	if blockID == "" {
		options := make([]huh.Option[string], 0, len(dayBlocks))
		for _, b := range dayBlocks {
			options = append(options, huh.NewOption(fmt.Sprintf("%s %s", blockTimeRange(b), b.Title), b.ID))
		}
		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which block?").
				Options(options...).
				Value(&blockID),
		)).Run(); err != nil {
			return err
		}
	}

	block, ok := current.FindBlock(blockID)
	if !ok {
		return fmt.Errorf("block not found: %s", blockID)
	}

	trackings, err := ctx.Store.Trackings()
	if err != nil {
		return err
	}
	prev, hadPrev := trackings.ForDay(date)[blockID]

	status := constants.BlockStatusCompleted
	actual := strconv.Itoa(block.EstimatedMinutes)
	focus := constants.DefaultFocus
	energy := constants.DefaultEnergy
	note := ""
	if hadPrev {
		status = prev.Status
		if prev.ActualMinutes != nil {
			actual = strconv.Itoa(*prev.ActualMinutes)
		}
		focus = prev.Focus
		energy = prev.Energy
		note = prev.Note
	}

	ratingOptions := []huh.Option[int]{
		huh.NewOption("1", 1), huh.NewOption("2", 2), huh.NewOption("3", 3),
		huh.NewOption("4", 4), huh.NewOption("5", 5),
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[constants.BlockStatus]().
			Title(fmt.Sprintf("%s: how did it go?", block.Title)).
			Options(
				huh.NewOption("Completed", constants.BlockStatusCompleted),
				huh.NewOption("In progress", constants.BlockStatusInProgress),
				huh.NewOption("Skipped", constants.BlockStatusSkipped),
				huh.NewOption("Pending", constants.BlockStatusPending),
			).
			Value(&status),
		huh.NewInput().
			Title("Actual minutes").
			Description(fmt.Sprintf("Estimated %d min; leave blank if unknown.", block.EstimatedMinutes)).
			Value(&actual),
		huh.NewSelect[int]().Title("Focus (1-5)").Options(ratingOptions...).Value(&focus),
		huh.NewSelect[int]().Title("Energy drain (1-5)").Options(ratingOptions...).Value(&energy),
		huh.NewInput().Title("Note").Value(&note),
	))
	if err := form.Run(); err != nil {
		return err
	}

	// An unparseable actual is stored as unknown, never as zero.
	var actualMinutes *int
	if v, err := strconv.Atoi(strings.TrimSpace(actual)); err == nil {
		actualMinutes = &v
	}

	entry, err := ctx.Tracker.RecordOutcome(date, blockID, tracking.Outcome{
		Status:        status,
		ActualMinutes: actualMinutes,
		Focus:         focus,
		Energy:        energy,
		Note:          note,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s for %q", entry.Status, block.Title)
	if entry.ActualMinutes != nil {
		fmt.Printf(" (%d min, %s vs estimate)", *entry.ActualMinutes, tracking.DiffString(*entry.ActualMinutes, block.EstimatedMinutes))
	}
	fmt.Println()

	c.printDaySummary(ctx, date)
	return nil
}

func (c *TrackCmd) printDaySummary(ctx *Context, date string) {
	_, current, err := ctx.requireCurrent()
	if err != nil {
		return
	}
	trackings, err := ctx.Store.Trackings()
	if err != nil {
		return
	}

	summary := tracking.SummarizeDay(current, trackings, date)
	fmt.Printf("\n%s: %d/%d blocks completed", date, summary.Completed, summary.TotalBlocks)
	if summary.Tracked {
		fmt.Printf(", %d min recorded (%s vs plan)", summary.TotalActual, tracking.DiffString(summary.TotalActual, summary.TotalEstimated))
	}
	fmt.Println()
}
