package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timecraft.json")
	kv := NewJSONStore(path)
	if err := kv.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return NewStore(kv)
}

func TestJSONStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecraft.json")
	kv := NewJSONStore(path)
	if err := kv.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := kv.Init(); err == nil {
		t.Error("second Init should refuse an existing file")
	}
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	kv := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := kv.Load(); err == nil {
		t.Error("Load should fail when the file does not exist")
	}
}

func TestJSONStore_SetAllPersistsEveryKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecraft.json")
	kv := NewJSONStore(path)
	if err := kv.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	batch := map[string]string{"a": "1", "b": "2", "c": "3"}
	if err := kv.SetAll(batch); err != nil {
		t.Fatalf("SetAll failed: %v", err)
	}

	// A fresh load must see the whole batch.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for key, want := range batch {
		got, ok, err := reopened.Get(key)
		if err != nil || !ok || got != want {
			t.Errorf("Get(%q) = (%q, %v, %v), want (%q, true, nil)", key, got, ok, err, want)
		}
	}
}

func TestSettings_DefaultsWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	settings, ok, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false before onboarding")
	}
	if settings.TargetFreeHours != constants.DefaultTargetFreeHours {
		t.Errorf("expected default target %d, got %d", constants.DefaultTargetFreeHours, settings.TargetFreeHours)
	}
}

func TestSettings_FillsMissingTarget(t *testing.T) {
	store := newTestStore(t)

	// A payload written by an older build may lack the target field.
	if err := store.SaveSettings(models.UserSettings{OnboardingCompleted: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	settings, ok, err := store.Settings()
	if err != nil || !ok {
		t.Fatalf("Settings = (ok=%v, err=%v)", ok, err)
	}
	if settings.TargetFreeHours != constants.DefaultTargetFreeHours {
		t.Errorf("expected target filled to %d, got %d", constants.DefaultTargetFreeHours, settings.TargetFreeHours)
	}
	if !settings.OnboardingCompleted {
		t.Error("expected onboardingCompleted to survive")
	}
}

func TestCycle_AbsentAndNilBlocks(t *testing.T) {
	store := newTestStore(t)

	if _, ok, err := store.Cycle("cycle_2026-01-05_2026-01-11"); ok || err != nil {
		t.Errorf("absent cycle should be (ok=false, err=nil), got (ok=%v, err=%v)", ok, err)
	}

	c := models.Cycle{
		ID:             models.CycleKey("2026-01-05", "2026-01-11"),
		CycleStartDate: "2026-01-05",
		CycleEndDate:   "2026-01-11",
		CycleNumber:    1,
		Status:         constants.CycleStatusDraft,
	}
	if err := store.SaveCycle(c); err != nil {
		t.Fatalf("SaveCycle failed: %v", err)
	}

	loaded, ok, err := store.Cycle(c.ID)
	if err != nil || !ok {
		t.Fatalf("Cycle = (ok=%v, err=%v)", ok, err)
	}
	if loaded.Blocks == nil {
		t.Error("a loaded cycle must never carry nil blocks")
	}
}

func TestStore_CorruptPayloadSurfaces(t *testing.T) {
	store := newTestStore(t)

	if err := store.kv.Set(constants.KeyUserSettings, "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, _, err := store.Settings(); err == nil {
		t.Error("corrupt settings payload should surface as an error")
	}
}

func TestSaveCycleAsCurrent_RepointsPointer(t *testing.T) {
	store := newTestStore(t)

	c := models.Cycle{ID: models.CycleKey("2026-01-05", "2026-01-11"), CycleNumber: 1, Blocks: []models.Block{}}
	if err := store.SaveCycleAsCurrent(c); err != nil {
		t.Fatalf("SaveCycleAsCurrent failed: %v", err)
	}

	id, ok, err := store.CurrentCycleID()
	if err != nil || !ok {
		t.Fatalf("CurrentCycleID = (ok=%v, err=%v)", ok, err)
	}
	if id != c.ID {
		t.Errorf("pointer = %q, want %q", id, c.ID)
	}
}

func TestAppendReview_RejectsDuplicateCycle(t *testing.T) {
	store := newTestStore(t)

	record := models.ReviewRecord{ID: "review_cycle1", CycleNumber: 1}
	if err := store.AppendReview(record); err != nil {
		t.Fatalf("first AppendReview failed: %v", err)
	}
	err := store.AppendReview(record)
	if !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected validation error for duplicate cycle review, got %v", err)
	}

	reviews, err := store.Reviews()
	if err != nil {
		t.Fatalf("Reviews failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("expected 1 review after rejected duplicate, got %d", len(reviews))
	}
}

func TestRolloverBatch_WritesAllKeysTogether(t *testing.T) {
	store := newTestStore(t)

	completed := models.Cycle{ID: models.CycleKey("2026-01-05", "2026-01-11"), CycleNumber: 1, Status: constants.CycleStatusCompleted, Blocks: []models.Block{}}
	next := models.Cycle{ID: models.CycleKey("2026-01-12", "2026-01-18"), CycleNumber: 2, Status: constants.CycleStatusDraft, Blocks: []models.Block{}}
	record := models.ReviewRecord{ID: "review_cycle1", CycleNumber: 1}

	if err := store.RolloverBatch(completed, record, next); err != nil {
		t.Fatalf("RolloverBatch failed: %v", err)
	}

	id, ok, _ := store.CurrentCycleID()
	if !ok || id != next.ID {
		t.Errorf("pointer = %q, want %q", id, next.ID)
	}
	loaded, ok, _ := store.Cycle(completed.ID)
	if !ok || loaded.Status != constants.CycleStatusCompleted {
		t.Errorf("completed cycle not persisted, got (ok=%v, status=%s)", ok, loaded.Status)
	}
	reviews, _ := store.Reviews()
	if len(reviews) != 1 || reviews[0].CycleNumber != 1 {
		t.Errorf("expected the review record in the log, got %v", reviews)
	}
}

func TestOnboardingBatch(t *testing.T) {
	store := newTestStore(t)

	settings := models.UserSettings{TargetFreeHours: 4, OnboardingCompleted: true}
	first := models.Cycle{ID: models.CycleKey("2026-01-05", "2026-01-11"), CycleNumber: 1, Blocks: []models.Block{}}

	if err := store.OnboardingBatch(settings, first); err != nil {
		t.Fatalf("OnboardingBatch failed: %v", err)
	}

	got, ok, err := store.Settings()
	if err != nil || !ok {
		t.Fatalf("Settings = (ok=%v, err=%v)", ok, err)
	}
	if got.TargetFreeHours != 4 || !got.OnboardingCompleted {
		t.Errorf("settings not persisted: %+v", got)
	}
	id, ok, _ := store.CurrentCycleID()
	if !ok || id != first.ID {
		t.Errorf("pointer = %q, want %q", id, first.ID)
	}
}

func TestTrackings_EmptyWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	trackings, err := store.Trackings()
	if err != nil {
		t.Fatalf("Trackings failed: %v", err)
	}
	if trackings == nil {
		t.Fatal("expected an empty map, not nil")
	}
	if len(trackings) != 0 {
		t.Errorf("expected no entries, got %d", len(trackings))
	}
}

func TestJSONStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecraft.json")
	kv := NewJSONStore(path)
	if err := kv.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}
