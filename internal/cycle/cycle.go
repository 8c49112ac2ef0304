package cycle

import (
	"fmt"
	"time"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/logger"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/storage"
	"github.com/julianstephens/timecraft/internal/utils"
)

// Manager owns cycle creation, status transitions and next-cycle rollover.
// Exactly one cycle is current at a time, referenced by the stored pointer.
type Manager struct {
	store *storage.Store
}

func New(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// Create builds a draft cycle spanning seven days from startDate, with no
// blocks.
func (m *Manager) Create(startDate time.Time, number int) models.Cycle {
	start := utils.FormatISO(startDate)
	end := utils.FormatISO(utils.AddDays(startDate, constants.CycleDays-1))
	return models.Cycle{
		ID:             models.CycleKey(start, end),
		CycleStartDate: start,
		CycleEndDate:   end,
		CycleNumber:    number,
		Status:         constants.CycleStatusDraft,
		Blocks:         []models.Block{},
	}
}

// Current returns the cycle the current-cycle pointer references.
func (m *Manager) Current() (models.Cycle, bool, error) {
	id, ok, err := m.store.CurrentCycleID()
	if err != nil || !ok {
		return models.Cycle{}, false, err
	}
	return m.store.Cycle(id)
}

// GetOrCreateCurrent returns the current cycle, creating cycle #1 anchored
// to today when no pointer exists yet (or the pointed-at cycle payload is
// missing, which a torn multi-key write can leave behind).
func (m *Manager) GetOrCreateCurrent() (models.Cycle, error) {
	current, ok, err := m.Current()
	if err != nil {
		return models.Cycle{}, err
	}
	if ok {
		return current, nil
	}

	first := m.Create(utils.Today(), 1)
	if err := m.store.SaveCycleAsCurrent(first); err != nil {
		return models.Cycle{}, err
	}
	logger.Info("created cycle", "cycle", first.ID, "number", first.CycleNumber)
	return first, nil
}

// ToggleLock flips the cycle between draft and locked and persists it.
// Completed cycles are terminal and cannot be toggled.
func (m *Manager) ToggleLock(c *models.Cycle) error {
	if c.Status == constants.CycleStatusCompleted {
		return fmt.Errorf("%w: cycle %d is completed", apperrors.ErrValidation, c.CycleNumber)
	}

	if c.Status == constants.CycleStatusLocked {
		c.Status = constants.CycleStatusDraft
	} else {
		c.Status = constants.CycleStatusLocked
	}

	return m.store.SaveCycle(*c)
}

// CompleteAndRollover marks the cycle completed, persists the review
// record, creates the next cycle (start = prior end + 1 day, number + 1)
// as an empty draft and repoints the current-cycle pointer, all in one
// atomic batch. Returns the new current cycle.
func (m *Manager) CompleteAndRollover(c models.Cycle, record models.ReviewRecord) (models.Cycle, error) {
	priorEnd, err := utils.ParseISO(c.CycleEndDate)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("invalid cycle end date: %w", err)
	}

	c.Status = constants.CycleStatusCompleted
	next := m.Create(utils.AddDays(priorEnd, 1), c.CycleNumber+1)

	if err := m.store.RolloverBatch(c, record, next); err != nil {
		return models.Cycle{}, err
	}

	logger.Info("rolled over cycle", "completed", c.CycleNumber, "next", next.CycleNumber)
	return next, nil
}

// FinishOnboarding persists the completed settings and the seed blocks of
// cycle #1 built from the onboarding templates, making it current, in one
// atomic batch.
func (m *Manager) FinishOnboarding(targetFreeHours int, seedBlocks []models.Block) (models.Cycle, error) {
	settings := models.UserSettings{
		TargetFreeHours:     targetFreeHours,
		OnboardingCompleted: true,
		OnboardingDate:      time.Now().Format(time.RFC3339),
	}

	first := m.Create(utils.Today(), 1)
	first.Blocks = seedBlocks
	if seedBlocks == nil {
		first.Blocks = []models.Block{}
	}
	if err := m.store.OnboardingBatch(settings, first); err != nil {
		return models.Cycle{}, err
	}

	logger.Info("onboarding finished", "targetFreeHours", targetFreeHours, "blocks", len(seedBlocks))
	return first, nil
}

// RequireOnboarded returns the settings, failing with a missing-
// prerequisite signal when onboarding has not completed; callers redirect
// to the onboarding flow instead of proceeding.
func (m *Manager) RequireOnboarded() (models.UserSettings, error) {
	settings, ok, err := m.store.Settings()
	if err != nil {
		return models.UserSettings{}, err
	}
	if !ok || !settings.OnboardingCompleted {
		return models.UserSettings{}, fmt.Errorf("%w: onboarding has not been completed", apperrors.ErrMissingPrerequisite)
	}
	return settings, nil
}
