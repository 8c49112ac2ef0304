package freetime

import (
	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/models"
)

// Two daily-allowance conventions coexist: the onboarding summary assumes
// a fixed 16-hour day, while the schedule view derives its allowance from
// the grid window and averages across the cycle. Callers pick the
// computation matching their context; whether the difference is
// intentional is unresolved upstream, so the two are kept as separate
// named functions instead of being unified.

// OnboardingFreeHours estimates daily free hours for a template working
// set against the fixed onboarding allowance. Sleep-typed blocks are
// excluded from the blocked total.
func OnboardingFreeHours(blocks []models.Block) float64 {
	blocked := 0
	for _, b := range blocks {
		if b.Type == "sleep" {
			continue
		}
		blocked += b.DurationHours()
	}

	free := float64(constants.OnboardingDailyHours - blocked)
	if free < 0 {
		return 0
	}
	return free
}

// ScheduleFreeHours derives daily free hours for a cycle from the grid
// window (DayEndHour - DayStartHour), with the blocked total averaged
// across the cycle's days. Free-typed blocks don't count as blocked.
func ScheduleFreeHours(c models.Cycle) float64 {
	totalHours := float64(constants.DayEndHour - constants.DayStartHour)

	blocked := 0.0
	if len(c.Blocks) > 0 {
		sum := 0
		for _, b := range c.Blocks {
			if b.Type == constants.BlockTypeFree {
				continue
			}
			sum += b.DurationHours()
		}
		blocked = float64(sum) / float64(constants.CycleDays)
	}

	free := totalHours - blocked
	if free < 0 {
		return 0
	}
	return free
}

// FreeTimeStatus compares free hours against the user's target.
type FreeTimeStatus struct {
	FreeHours float64
	Target    float64
	Diff      float64
	Good      bool    // false means the warn state
	Percent   float64 // of-target bar value, capped at 100
}

// Status derives the free-time status badge values for a target.
func Status(freeHours, target float64) FreeTimeStatus {
	diff := freeHours - target

	percent := 0.0
	if target > 0 {
		percent = freeHours / target * 100
		if percent > 100 {
			percent = 100
		}
	}

	return FreeTimeStatus{
		FreeHours: freeHours,
		Target:    target,
		Diff:      diff,
		Good:      diff >= 0,
		Percent:   percent,
	}
}

// CombineSuggestion nudges the user to merge two short work blocks.
type CombineSuggestion struct {
	FirstTitle   string
	SecondTitle  string
	TotalMinutes int
}

// Combine inspects the first two work-category blocks in insertion order
// and suggests merging them when their summed estimate fits the threshold.
// Later work blocks are ignored on purpose; the heuristic only ever looks
// at the first pair.
func Combine(blocks []models.Block) (CombineSuggestion, bool) {
	var work []models.Block
	for _, b := range blocks {
		if b.Category == constants.CategoryWork {
			work = append(work, b)
			if len(work) == 2 {
				break
			}
		}
	}

	if len(work) < 2 {
		return CombineSuggestion{}, false
	}

	total := work[0].EstimatedMinutes + work[1].EstimatedMinutes
	if total > constants.CombineThresholdMin {
		return CombineSuggestion{}, false
	}

	return CombineSuggestion{
		FirstTitle:   work[0].Title,
		SecondTitle:  work[1].Title,
		TotalMinutes: total,
	}, true
}

// BlockVariance is the actual-vs-estimate delta of one tracked block.
type BlockVariance struct {
	BlockID string
	Title   string
	Diff    int // actual minus estimated minutes
}

// DayVariance aggregates tracked outcomes for one date.
type DayVariance struct {
	PerBlock        []BlockVariance
	TotalDiff       int
	CompletedCount  int
	TotalBlocks     int
	CompletionRatio float64
}

// VarianceForDay computes completion and time variance for the blocks of a
// single day. Only entries with a recorded actual contribute to the diff;
// completion counts every completed entry regardless.
func VarianceForDay(dayBlocks []models.Block, entries map[string]models.TrackingEntry) DayVariance {
	v := DayVariance{TotalBlocks: len(dayBlocks)}

	for _, b := range dayBlocks {
		entry, ok := entries[b.ID]
		if !ok {
			continue
		}
		if entry.Status == constants.BlockStatusCompleted {
			v.CompletedCount++
		}
		if entry.ActualMinutes == nil {
			continue
		}
		diff := *entry.ActualMinutes - b.EstimatedMinutes
		v.PerBlock = append(v.PerBlock, BlockVariance{BlockID: b.ID, Title: b.Title, Diff: diff})
		v.TotalDiff += diff
	}

	if v.TotalBlocks > 0 {
		v.CompletionRatio = float64(v.CompletedCount) / float64(v.TotalBlocks)
	}
	return v
}
