package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/freetime"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/utils"
)

// blockTemplates are the quick-add choices offered during onboarding.
// End hours past 24 mean the block runs into the next morning; the
// scheduler normalizes them at add time.
var blockTemplates = []models.Block{
	{ID: "tpl_sleep", Title: "Sleep", Category: constants.CategorySleep, StartH: 23, EndH: 31, Type: constants.BlockTypeLife, ApplyAllDays: true},
	{ID: "tpl_work", Title: "Work", Category: constants.CategoryWork, StartH: 9, EndH: 18, Type: constants.BlockTypeLife, ApplyAllDays: true},
	{ID: "tpl_exercise", Title: "Morning exercise", Category: constants.CategoryExercise, StartH: 7, EndH: 8, Type: constants.BlockTypeLife, ApplyAllDays: true},
	{ID: "tpl_family", Title: "Family time", Category: constants.CategoryRelationships, StartH: 19, EndH: 20, Type: constants.BlockTypeLife, ApplyAllDays: true},
	{ID: "tpl_learning", Title: "Reading & learning", Category: constants.CategoryGrowth, StartH: 21, EndH: 22, Type: constants.BlockTypeLife, ApplyAllDays: true},
	{ID: "tpl_free", Title: "Free evening", Category: constants.CategoryFree, StartH: 20, EndH: 21, Type: constants.BlockTypeFree, ApplyAllDays: true},
}

type OnboardCmd struct {
	Target int `short:"t" help:"Target free hours per day (skips the prompt when set)."`
}

func (c *OnboardCmd) Validate() error {
	if c.Target < 0 || c.Target > 12 {
		return fmt.Errorf("target free hours must be between 0 and 12")
	}
	return nil
}

func (c *OnboardCmd) Run(ctx *Context) error {
	if _, err := ctx.Lifecycle.RequireOnboarded(); err == nil {
		return fmt.Errorf("%w: onboarding already completed", apperrors.ErrValidation)
	}

	target := c.Target
	var picked []string

	groups := []*huh.Group{}
	if target == 0 {
		target = constants.DefaultTargetFreeHours
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title("How much free time do you want per day?").
				Options(
					huh.NewOption("1 hour", 1),
					huh.NewOption("2 hours", 2),
					huh.NewOption("3 hours", 3),
					huh.NewOption("4 hours", 4),
					huh.NewOption("5 hours", 5),
				).
				Value(&target),
		))
	}

	templateOptions := make([]huh.Option[string], 0, len(blockTemplates))
	for _, tpl := range blockTemplates {
		label := fmt.Sprintf("%s (%d:00-%d:00)", tpl.Title, tpl.StartH, utils.DisplayHour(utils.WrapTemplateEnd(tpl.EndH)))
		templateOptions = append(templateOptions, huh.NewOption(label, tpl.ID))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Pick your recurring blocks").
			Description("Each applies to all seven days of the cycle.").
			Options(templateOptions...).
			Value(&picked),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	var working []models.Block
	for _, id := range picked {
		for _, tpl := range blockTemplates {
			if tpl.ID != id {
				continue
			}
			var err error
			working, err = ctx.Scheduler.AddTemplateBlock(working, tpl)
			if err != nil {
				return err
			}
		}
	}

	c.printFreeSummary(working, target)

	seed, err := ctx.Scheduler.ExpandToCycle(working, utils.TodayISO())
	if err != nil {
		return err
	}

	first, err := ctx.Lifecycle.FinishOnboarding(target, seed)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s is ready with %d blocks. See it with 'timecraft status'.\n",
		cycleLabel(first), len(first.Blocks))
	return nil
}

func (c *OnboardCmd) printFreeSummary(working []models.Block, target int) {
	free := freetime.OnboardingFreeHours(working)
	status := freetime.Status(free, float64(target))

	fmt.Printf("\nEstimated free time: %.1f h/day (target %d h)\n", free, target)
	if status.Good {
		fmt.Println(goodStyle.Render(fmt.Sprintf("✓ %.1f hours above target", status.Diff)))
	} else {
		fmt.Println(warnStyle.Render(fmt.Sprintf("! %.1f hours short of target; trim a block or lower the target", -status.Diff)))
	}

	if suggestion, ok := freetime.Combine(working); ok {
		fmt.Printf("Tip: %q and %q total %d minutes; one merged block is easier to hold focus in.\n",
			suggestion.FirstTitle, suggestion.SecondTitle, suggestion.TotalMinutes)
	}
}
