package cycle

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/storage"
	"github.com/julianstephens/timecraft/internal/utils"
)

func newTestManager(t *testing.T) (*Manager, *storage.Store) {
	t.Helper()
	kv := storage.NewJSONStore(filepath.Join(t.TempDir(), "timecraft.json"))
	if err := kv.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	store := storage.NewStore(kv)
	return New(store), store
}

func TestCreate_SevenDaySpan(t *testing.T) {
	m, _ := newTestManager(t)

	start, _ := utils.ParseISO("2026-01-05")
	c := m.Create(start, 3)

	if c.CycleStartDate != "2026-01-05" || c.CycleEndDate != "2026-01-11" {
		t.Errorf("expected span 2026-01-05..2026-01-11, got %s..%s", c.CycleStartDate, c.CycleEndDate)
	}
	if c.ID != "cycle_2026-01-05_2026-01-11" {
		t.Errorf("unexpected cycle id %s", c.ID)
	}
	if c.CycleNumber != 3 {
		t.Errorf("expected number 3, got %d", c.CycleNumber)
	}
	if c.Status != constants.CycleStatusDraft {
		t.Errorf("new cycles start as drafts, got %s", c.Status)
	}
	if c.Blocks == nil || len(c.Blocks) != 0 {
		t.Errorf("new cycles start with an empty block list, got %v", c.Blocks)
	}
}

func TestGetOrCreateCurrent_BootstrapsCycleOne(t *testing.T) {
	m, store := newTestManager(t)

	c, err := m.GetOrCreateCurrent()
	if err != nil {
		t.Fatalf("GetOrCreateCurrent failed: %v", err)
	}
	if c.CycleNumber != 1 {
		t.Errorf("expected cycle #1, got %d", c.CycleNumber)
	}
	if c.CycleStartDate != utils.TodayISO() {
		t.Errorf("expected cycle anchored to today, got %s", c.CycleStartDate)
	}

	id, ok, err := store.CurrentCycleID()
	if err != nil || !ok || id != c.ID {
		t.Errorf("pointer = (%q, %v, %v), want (%q, true, nil)", id, ok, err, c.ID)
	}

	// A second call returns the same cycle instead of creating another.
	again, err := m.GetOrCreateCurrent()
	if err != nil {
		t.Fatalf("second GetOrCreateCurrent failed: %v", err)
	}
	if again.ID != c.ID {
		t.Errorf("expected the same cycle back, got %s vs %s", again.ID, c.ID)
	}
}

func TestToggleLock(t *testing.T) {
	m, _ := newTestManager(t)

	c, err := m.GetOrCreateCurrent()
	if err != nil {
		t.Fatalf("GetOrCreateCurrent failed: %v", err)
	}

	if err := m.ToggleLock(&c); err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	if c.Status != constants.CycleStatusLocked {
		t.Errorf("expected locked, got %s", c.Status)
	}

	if err := m.ToggleLock(&c); err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	if c.Status != constants.CycleStatusDraft {
		t.Errorf("expected draft after second toggle, got %s", c.Status)
	}

	c.Status = constants.CycleStatusCompleted
	if err := m.ToggleLock(&c); !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("completed cycles are terminal, expected validation error, got %v", err)
	}
}

func TestCompleteAndRollover(t *testing.T) {
	m, store := newTestManager(t)

	start, _ := utils.ParseISO("2026-01-05")
	prior := m.Create(start, 1)
	if err := store.SaveCycleAsCurrent(prior); err != nil {
		t.Fatalf("SaveCycleAsCurrent failed: %v", err)
	}

	record := models.ReviewRecord{ID: "review_cycle1", CycleNumber: 1}
	next, err := m.CompleteAndRollover(prior, record)
	if err != nil {
		t.Fatalf("CompleteAndRollover failed: %v", err)
	}

	if next.CycleStartDate != "2026-01-12" {
		t.Errorf("next cycle starts the day after the prior end, got %s", next.CycleStartDate)
	}
	if next.CycleEndDate != "2026-01-18" {
		t.Errorf("expected next end 2026-01-18, got %s", next.CycleEndDate)
	}
	if next.CycleNumber != 2 {
		t.Errorf("expected number 2, got %d", next.CycleNumber)
	}
	if len(next.Blocks) != 0 {
		t.Errorf("next cycle starts empty, got %d blocks", len(next.Blocks))
	}

	completed, ok, err := store.Cycle(prior.ID)
	if err != nil || !ok {
		t.Fatalf("completed cycle missing: (ok=%v, err=%v)", ok, err)
	}
	if completed.Status != constants.CycleStatusCompleted {
		t.Errorf("prior cycle should be completed, got %s", completed.Status)
	}

	id, ok, _ := store.CurrentCycleID()
	if !ok || id != next.ID {
		t.Errorf("pointer = %q, want %q", id, next.ID)
	}

	reviews, err := store.Reviews()
	if err != nil || len(reviews) != 1 {
		t.Errorf("expected the review persisted with the rollover, got (%v, %v)", reviews, err)
	}
}

func TestFinishOnboarding(t *testing.T) {
	m, store := newTestManager(t)

	seed := []models.Block{{ID: "tpl_work_" + utils.TodayISO(), Date: utils.TodayISO(), Title: "Work"}}
	first, err := m.FinishOnboarding(4, seed)
	if err != nil {
		t.Fatalf("FinishOnboarding failed: %v", err)
	}

	if first.CycleNumber != 1 || len(first.Blocks) != 1 {
		t.Errorf("unexpected first cycle: number=%d blocks=%d", first.CycleNumber, len(first.Blocks))
	}

	settings, ok, err := store.Settings()
	if err != nil || !ok {
		t.Fatalf("Settings = (ok=%v, err=%v)", ok, err)
	}
	if !settings.OnboardingCompleted || settings.TargetFreeHours != 4 {
		t.Errorf("settings not persisted: %+v", settings)
	}
	if settings.OnboardingDate == "" {
		t.Error("expected onboarding date recorded")
	}
}

func TestRequireOnboarded(t *testing.T) {
	m, store := newTestManager(t)

	if _, err := m.RequireOnboarded(); !apperrors.Is(err, apperrors.ErrMissingPrerequisite) {
		t.Errorf("expected missing-prerequisite error, got %v", err)
	}

	if err := store.SaveSettings(models.UserSettings{TargetFreeHours: 3, OnboardingCompleted: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	settings, err := m.RequireOnboarded()
	if err != nil {
		t.Fatalf("RequireOnboarded failed after onboarding: %v", err)
	}
	if settings.TargetFreeHours != 3 {
		t.Errorf("unexpected settings %+v", settings)
	}
}
