package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/timecraft/internal/freetime"
	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	settings, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	trackings, err := ctx.Store.Trackings()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n\n", headerStyle.Render(cycleLabel(current)), statusBadge(current.Status))

	free := freetime.ScheduleFreeHours(current)
	status := freetime.Status(free, float64(settings.TargetFreeHours))
	fmt.Printf("Free time: %.1f h/day of %d h target  %s\n",
		status.FreeHours, settings.TargetFreeHours, freeMeter(status))
	if status.Good {
		fmt.Println(goodStyle.Render(fmt.Sprintf("✓ %.1f h above target", status.Diff)))
	} else {
		fmt.Println(warnStyle.Render(fmt.Sprintf("! %.1f h short of target", -status.Diff)))
	}

	days, err := utils.CycleDays(current.CycleStartDate)
	if err != nil {
		return err
	}

	today := utils.TodayISO()
	fmt.Print("\nWeek: ")
	for _, day := range days {
		summary := tracking.SummarizeDay(current, trackings, day.ISO)
		tier := tracking.CompletionTier(summary.TotalBlocks, summary.Completed, day.ISO <= today)
		fmt.Printf("%s ", tierDot(tier))
	}
	fmt.Println()
	for _, day := range days {
		marker := "  "
		if day.ISO == today {
			marker = subtleStyle.Render("← today")
		}
		summary := tracking.SummarizeDay(current, trackings, day.ISO)
		fmt.Printf("  %s %d/%d  %d/%d blocks %s\n",
			day.DayName, day.Month, day.Day, summary.Completed, summary.TotalBlocks, marker)
	}

	if tracking.ReviewNudgeDue(current, today) {
		fmt.Println()
		fmt.Println(warnStyle.Render("The cycle has reached its end date. Run 'timecraft review' to close it out."))
	}
	return nil
}

// freeMeter renders a ten-slot of-target bar.
func freeMeter(status freetime.FreeTimeStatus) string {
	filled := int(status.Percent / 10)
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	if status.Good {
		return goodStyle.Render(bar)
	}
	return warnStyle.Render(bar)
}
