package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/review"
	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

var dimensionTitles = map[constants.Dimension]string{
	constants.DimWork:          "Work",
	constants.DimRelationships: "Relationships",
	constants.DimHealth:        "Body & mind",
	constants.DimGrowth:        "Learning",
	constants.DimFreeTime:      "Free time",
}

type ReviewCmd struct {
	History bool `help:"List past reviews instead of starting a new one."`
}

func (c *ReviewCmd) Run(ctx *Context) error {
	if c.History {
		return c.printHistory(ctx)
	}

	_, current, err := ctx.requireCurrent()
	if err != nil {
		return err
	}

	trackings, err := ctx.Store.Trackings()
	if err != nil {
		return err
	}

	if !tracking.ReviewNudgeDue(current, utils.TodayISO()) {
		fmt.Println(subtleStyle.Render(fmt.Sprintf("The cycle runs until %s; you can still review it early.", current.CycleEndDate)))
	}

	fmt.Printf("%s weekly review\n\n", headerStyle.Render(cycleLabel(current)))
	c.printStats(current, trackings)

	started := time.Now()

	scores := models.DefaultScores()
	comments := map[constants.Dimension]string{}

	scoreOptions := make([]huh.Option[int], 0, 11)
	for v := 0; v <= 10; v++ {
		scoreOptions = append(scoreOptions, huh.NewOption(fmt.Sprintf("%d", v), v))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Overall satisfaction (0-10)").
				Options(scoreOptions...).
				Value(&scores.Overall),
		),
	}
	scoreValues := map[constants.Dimension]*int{}
	commentValues := map[constants.Dimension]*string{}
	for _, dim := range constants.Dimensions {
		val := scores.Dimension(dim)
		comment := ""
		scoreValues[dim] = &val
		commentValues[dim] = &comment
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("%s (0-10)", dimensionTitles[dim])).
				Options(scoreOptions...).
				Value(&val),
			huh.NewInput().
				Title("Comment (optional)").
				Value(&comment),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}
	for dim, ptr := range scoreValues {
		scores.SetDimension(dim, *ptr)
	}
	for dim, ptr := range commentValues {
		comments[dim] = *ptr
	}

	// Proposals regenerate from the final scores; accept/skip below is
	// keyed by dimension tag, so earlier score edits can't shift what an
	// acceptance refers to.
	proposals := ctx.Engine.Generate(scores)
	var acceptedTags []constants.Dimension
	if len(proposals) == 0 {
		fmt.Println(goodStyle.Render(review.AllGoodMessage))
	} else {
		options := make([]huh.Option[constants.Dimension], 0, len(proposals))
		for _, p := range proposals {
			options = append(options, huh.NewOption(fmt.Sprintf("[%s] %s (%s)", p.Tag, p.Body, p.Impact), p.Tag))
		}
		if err := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[constants.Dimension]().
				Title("Carry these into next week?").
				Options(options...).
				Value(&acceptedTags),
		)).Run(); err != nil {
			return err
		}
	}

	elapsed := int(time.Since(started).Seconds())
	record, err := ctx.Engine.BuildRecord(current, scores, comments, acceptedTags, elapsed)
	if err != nil {
		return err
	}

	next, err := ctx.Engine.Save(current, record)
	if err != nil {
		return err
	}

	if record.IsLowQuality {
		fmt.Println(warnStyle.Render("Review saved, flagged as rushed (under 10 seconds)."))
	} else {
		fmt.Println("Review saved.")
	}
	fmt.Printf("%s starts fresh. Lay out its blocks with 'timecraft block add'.\n", cycleLabel(next))
	return nil
}

func (c *ReviewCmd) printHistory(ctx *Context) error {
	reviews, err := ctx.Store.Reviews()
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Println(subtleStyle.Render("No reviews yet. The first one lands when a cycle ends."))
		return nil
	}

	for _, r := range reviews {
		flag := ""
		if r.IsLowQuality {
			flag = warnStyle.Render(" (rushed)")
		}
		fmt.Printf("%s  overall %d/10%s\n",
			headerStyle.Render(fmt.Sprintf("Week %d (%s - %s)", r.CycleNumber, r.CycleStartDate, r.CycleEndDate)),
			r.OverallScore, flag)
		for _, dim := range constants.Dimensions {
			ds, ok := r.DimensionScores[dim]
			if !ok {
				continue
			}
			line := fmt.Sprintf("  %-14s %2d/10", dimensionTitles[dim], ds.Score)
			if ds.Comment != "" {
				line += "  " + subtleStyle.Render(ds.Comment)
			}
			fmt.Println(line)
		}
		fmt.Println()
	}
	return nil
}

func (c *ReviewCmd) printStats(current models.Cycle, trackings models.Trackings) {
	stats := review.Stats(current, trackings)
	fmt.Printf("Completed blocks: %d / %d\n", stats.CompletedBlocks, stats.TotalBlocks)
	fmt.Printf("Sleep blocks: %d, exercise blocks: %d\n", stats.SleepBlocks, stats.ExerciseBlocks)
	fmt.Printf("Free blocks: %d h total\n\n", stats.FreeHours)
}
