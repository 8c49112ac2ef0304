package cli

import (
	"fmt"

	"github.com/julianstephens/timecraft/internal/constants"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Category string `short:"c" help:"Category." default:"work"`
	Estimate string `short:"e" help:"Estimated minutes; falls back to 60 when not a number."`
	Priority string `short:"p" help:"Priority (high|mid|low)." default:"mid"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	task, err := ctx.Scheduler.AddTask(c.Title, constants.Category(c.Category), c.Estimate, c.Priority)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %q (%d min, %s). Link it to a block with 'timecraft block add --type task --task %s'.\n",
		task.Title, task.EstimatedMinutes, task.Priority, task.ID)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println(subtleStyle.Render("No tasks yet. Add one with 'timecraft task add'."))
		return nil
	}

	for _, t := range tasks {
		fmt.Printf("%-28s %-14s %4d min  %-5s %s\n",
			t.Title, subtleStyle.Render(string(t.Category)), t.EstimatedMinutes, t.Priority, subtleStyle.Render(t.ID))
	}
	return nil
}
