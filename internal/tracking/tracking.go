package tracking

import (
	"fmt"
	"time"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/storage"
	"github.com/julianstephens/timecraft/internal/utils"
)

// Aggregator maintains the per-day, per-block outcome records and the
// weekly completion statistics derived from them.
type Aggregator struct {
	store *storage.Store
}

func New(store *storage.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Outcome carries the user-entered fields of a tracking record.
type Outcome struct {
	Status        constants.BlockStatus
	ActualMinutes *int // nil when the input was not a parseable number
	Focus         int
	Energy        int
	Note          string
}

// RecordOutcome upserts the tracking entry for (date, blockID). Focus and
// energy default to 3 when unset; a nil actual stays nil rather than
// becoming zero.
func (a *Aggregator) RecordOutcome(date, blockID string, outcome Outcome) (models.TrackingEntry, error) {
	if !models.ValidBlockStatus(outcome.Status) {
		return models.TrackingEntry{}, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, outcome.Status)
	}

	focus := outcome.Focus
	if focus == 0 {
		focus = constants.DefaultFocus
	}
	energy := outcome.Energy
	if energy == 0 {
		energy = constants.DefaultEnergy
	}
	if focus < 1 || focus > 5 || energy < 1 || energy > 5 {
		return models.TrackingEntry{}, fmt.Errorf("%w: focus and energy must be within 1-5", apperrors.ErrValidation)
	}

	entry := models.TrackingEntry{
		Status:        outcome.Status,
		ActualMinutes: outcome.ActualMinutes,
		Focus:         focus,
		Energy:        energy,
		Note:          outcome.Note,
		RecordedAt:    time.Now().Format(time.RFC3339),
	}

	trackings, err := a.store.Trackings()
	if err != nil {
		return models.TrackingEntry{}, err
	}
	trackings.Put(date, blockID, entry)
	if err := a.store.SaveTrackings(trackings); err != nil {
		return models.TrackingEntry{}, err
	}

	return entry, nil
}

// DaySummary aggregates one day's tracked outcomes.
type DaySummary struct {
	Completed      int
	TotalBlocks    int
	TotalActual    int
	TotalEstimated int
	Diff           int  // actual minus estimated, only meaningful when Tracked
	Tracked        bool // any actual minutes recorded for the day
}

// SummarizeDay builds the completed count and actual-vs-estimate totals
// for the given date.
func SummarizeDay(c models.Cycle, trackings models.Trackings, date string) DaySummary {
	dayBlocks := c.BlocksForDay(date)
	entries := trackings.ForDay(date)

	s := DaySummary{TotalBlocks: len(dayBlocks)}
	for _, b := range dayBlocks {
		s.TotalEstimated += b.EstimatedMinutes
	}
	for _, entry := range entries {
		if entry.Status == constants.BlockStatusCompleted {
			s.Completed++
		}
		if entry.ActualMinutes != nil {
			s.TotalActual += *entry.ActualMinutes
			s.Tracked = true
		}
	}
	s.Diff = s.TotalActual - s.TotalEstimated
	return s
}

// Tier buckets a day's completion for the week-progress display.
type Tier string

const (
	TierNeutral Tier = "neutral"
	TierGood    Tier = "good"
	TierPartial Tier = "partial"
	TierBehind  Tier = "behind"
)

// CompletionTier classifies one day. A day with no blocks is neutral, as
// is an untouched day that hasn't arrived yet; otherwise the completed
// ratio picks the tier.
func CompletionTier(totalBlocks, completed int, isPastOrToday bool) Tier {
	if totalBlocks == 0 {
		return TierNeutral
	}
	if !isPastOrToday && completed == 0 {
		return TierNeutral
	}

	ratio := float64(completed) / float64(totalBlocks)
	switch {
	case ratio >= 1.0:
		return TierGood
	case ratio >= 0.5:
		return TierPartial
	default:
		return TierBehind
	}
}

// ReviewNudgeDue reports whether the weekly review should be suggested:
// true once today reaches the cycle's end date.
func ReviewNudgeDue(c models.Cycle, todayISO string) bool {
	return todayISO >= c.CycleEndDate
}

// ClampViewDate shifts a view date by delta days, refusing to leave the
// cycle's range. Returns the new date and whether it moved.
func ClampViewDate(c models.Cycle, viewDate string, delta int) (string, bool) {
	d, err := utils.ParseISO(viewDate)
	if err != nil {
		return viewDate, false
	}
	next := utils.FormatISO(utils.AddDays(d, delta))
	if !utils.WithinCycle(next, c.CycleStartDate, c.CycleEndDate) {
		return viewDate, false
	}
	return next, true
}

// DiffString renders an actual-vs-estimate delta for display.
func DiffString(actual, estimated int) string {
	d := actual - estimated
	switch {
	case d == 0:
		return "±0m"
	case d > 0:
		return fmt.Sprintf("+%dm", d)
	default:
		return fmt.Sprintf("%dm", d)
	}
}
