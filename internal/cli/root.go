package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/timecraft/internal/cycle"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/review"
	"github.com/julianstephens/timecraft/internal/scheduler"
	"github.com/julianstephens/timecraft/internal/storage"
	"github.com/julianstephens/timecraft/internal/tracking"
	"github.com/julianstephens/timecraft/internal/utils"
)

// Context carries the injected application state every command runs
// against; nothing is reached through package globals.
type Context struct {
	Store     *storage.Store
	Scheduler *scheduler.Scheduler
	Lifecycle *cycle.Manager
	Tracker   *tracking.Aggregator
	Engine    *review.Engine
	Debug     bool
}

// NewContext wires the component graph on top of a loaded store.
func NewContext(store *storage.Store, debug bool) *Context {
	lifecycle := cycle.New(store)
	return &Context{
		Store:     store,
		Scheduler: scheduler.New(store),
		Lifecycle: lifecycle,
		Tracker:   tracking.New(store),
		Engine:    review.New(lifecycle),
		Debug:     debug,
	}
}

// requireCurrent loads settings and the current cycle, failing with the
// onboarding redirect when onboarding hasn't run.
func (ctx *Context) requireCurrent() (models.UserSettings, models.Cycle, error) {
	settings, err := ctx.Lifecycle.RequireOnboarded()
	if err != nil {
		return models.UserSettings{}, models.Cycle{}, err
	}
	current, err := ctx.Lifecycle.GetOrCreateCurrent()
	if err != nil {
		return models.UserSettings{}, models.Cycle{}, err
	}
	return settings, current, nil
}

// parseDates splits a comma-separated date list, defaulting to today.
func parseDates(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{utils.TodayISO()}, nil
	}
	var dates []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := utils.ParseISO(part); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", part, err)
		}
		dates = append(dates, part)
	}
	return dates, nil
}

// cycleLabel renders the "Week N (M/D - M/D)" header for a cycle.
func cycleLabel(c models.Cycle) string {
	start, err1 := utils.ParseISO(c.CycleStartDate)
	end, err2 := utils.ParseISO(c.CycleEndDate)
	if err1 != nil || err2 != nil {
		return fmt.Sprintf("Week %d", c.CycleNumber)
	}
	return fmt.Sprintf("Week %d (%d/%d - %d/%d)",
		c.CycleNumber,
		int(start.Month()), start.Day(),
		int(end.Month()), end.Day(),
	)
}

// blockTimeRange renders a block's hours with past-midnight ends wrapped
// for display.
func blockTimeRange(b models.Block) string {
	return fmt.Sprintf("%d:00-%d:00", b.StartH, utils.DisplayHour(b.EndH))
}
