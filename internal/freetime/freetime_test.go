package freetime

import (
	"testing"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/models"
)

func TestOnboardingFreeHours_ExcludesSleep(t *testing.T) {
	blocks := []models.Block{
		{Title: "Sleep", Type: "sleep", StartH: 23, EndH: 7},
		{Title: "Work", Type: constants.BlockTypeLife, StartH: 9, EndH: 18},
		{Title: "Exercise", Type: constants.BlockTypeLife, StartH: 7, EndH: 8},
	}

	// 16-hour allowance minus 9h work and 1h exercise; the sleep block
	// does not count against it.
	if got := OnboardingFreeHours(blocks); got != 6 {
		t.Errorf("OnboardingFreeHours = %v, want 6", got)
	}
}

func TestOnboardingFreeHours_ClampsAtZero(t *testing.T) {
	blocks := []models.Block{
		{Title: "Everything", Type: constants.BlockTypeLife, StartH: 0, EndH: 20},
	}
	if got := OnboardingFreeHours(blocks); got != 0 {
		t.Errorf("overbooked day should clamp to 0, got %v", got)
	}
}

func TestScheduleFreeHours_AveragesAcrossCycle(t *testing.T) {
	c := models.Cycle{Blocks: []models.Block{
		{Type: constants.BlockTypeLife, StartH: 9, EndH: 16}, // 7h
		{Type: constants.BlockTypeFree, StartH: 20, EndH: 22},
	}}

	// 19-hour grid window minus 7h/7days of blocked time; free-typed
	// blocks never count as blocked.
	if got := ScheduleFreeHours(c); got != 18 {
		t.Errorf("ScheduleFreeHours = %v, want 18", got)
	}
}

func TestScheduleFreeHours_EmptyCycle(t *testing.T) {
	if got := ScheduleFreeHours(models.Cycle{}); got != 19 {
		t.Errorf("empty cycle should yield the full window, got %v", got)
	}
}

func TestStatus(t *testing.T) {
	s := Status(6, 3)
	if !s.Good || s.Diff != 3 {
		t.Errorf("expected good with diff 3, got %+v", s)
	}
	if s.Percent != 100 {
		t.Errorf("percent caps at 100, got %v", s.Percent)
	}

	s = Status(2, 3)
	if s.Good {
		t.Error("below target should not be good")
	}
	if s.Diff != -1 {
		t.Errorf("expected diff -1, got %v", s.Diff)
	}

	s = Status(3, 3)
	if !s.Good {
		t.Error("exactly on target counts as good")
	}
}

func TestCombine_FirstTwoWorkBlocksOnly(t *testing.T) {
	blocks := []models.Block{
		{Title: "Standup", Category: constants.CategoryWork, EstimatedMinutes: 50},
		{Title: "Email", Category: constants.CategoryWork, EstimatedMinutes: 60},
		{Title: "Tiny fix", Category: constants.CategoryWork, EstimatedMinutes: 5},
	}

	suggestion, ok := Combine(blocks)
	if !ok {
		t.Fatal("expected a combine suggestion")
	}
	if suggestion.FirstTitle != "Standup" || suggestion.SecondTitle != "Email" {
		t.Errorf("the first pair should be suggested, got %q + %q", suggestion.FirstTitle, suggestion.SecondTitle)
	}
	if suggestion.TotalMinutes != 110 {
		t.Errorf("expected 110 min total, got %d", suggestion.TotalMinutes)
	}
}

func TestCombine_OverThreshold(t *testing.T) {
	blocks := []models.Block{
		{Title: "A", Category: constants.CategoryWork, EstimatedMinutes: 70},
		{Title: "B", Category: constants.CategoryWork, EstimatedMinutes: 60},
	}
	if _, ok := Combine(blocks); ok {
		t.Error("130 min exceeds the threshold, expected no suggestion")
	}
}

func TestCombine_NeedsTwoWorkBlocks(t *testing.T) {
	blocks := []models.Block{
		{Title: "Work", Category: constants.CategoryWork, EstimatedMinutes: 30},
		{Title: "Run", Category: constants.CategoryExercise, EstimatedMinutes: 30},
	}
	if _, ok := Combine(blocks); ok {
		t.Error("one work block is not enough for a suggestion")
	}
}

func TestVarianceForDay(t *testing.T) {
	minutes := func(v int) *int { return &v }

	dayBlocks := []models.Block{
		{ID: "a", Title: "Deep work", EstimatedMinutes: 120},
		{ID: "b", Title: "Email", EstimatedMinutes: 30},
		{ID: "c", Title: "Untracked", EstimatedMinutes: 60},
	}
	entries := map[string]models.TrackingEntry{
		"a": {Status: constants.BlockStatusCompleted, ActualMinutes: minutes(140)},
		"b": {Status: constants.BlockStatusSkipped}, // skipped, no actual recorded
	}

	v := VarianceForDay(dayBlocks, entries)
	if v.CompletedCount != 1 {
		t.Errorf("expected 1 completed, got %d", v.CompletedCount)
	}
	if len(v.PerBlock) != 1 || v.PerBlock[0].Diff != 20 {
		t.Errorf("only tracked actuals contribute, got %+v", v.PerBlock)
	}
	if v.TotalDiff != 20 {
		t.Errorf("expected total diff 20, got %d", v.TotalDiff)
	}
	if v.CompletionRatio != 1.0/3.0 {
		t.Errorf("expected ratio 1/3, got %v", v.CompletionRatio)
	}
}
