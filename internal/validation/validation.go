package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyTitle       ConflictType = "empty_title"
	ConflictInvalidTimeRange ConflictType = "invalid_time_range"
	ConflictHourOutOfRange   ConflictType = "hour_out_of_range"
	ConflictNoTargetDates    ConflictType = "no_target_dates"
	ConflictUnknownType      ConflictType = "unknown_type"
	ConflictScoreOutOfRange  ConflictType = "score_out_of_range"
)

// Conflict represents a detected problem in user input
type Conflict struct {
	Type        ConflictType
	Description string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Invalid input:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// BlockDraft carries the user-entered fields of a block before ids and
// derived values are assigned.
type BlockDraft struct {
	Title      string
	Type       constants.BlockType
	Category   constants.Category
	StartH     int
	EndH       int
	LinkedTask string
}

// Validator validates user input before any mutation happens
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateBlockDraft checks a block draft and its target dates. All
// preconditions are checked up front so a failed validation leaves no
// partial writes behind.
func (v *Validator) ValidateBlockDraft(draft BlockDraft, targetDates []string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if strings.TrimSpace(draft.Title) == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyTitle,
			Description: "title must not be empty",
		})
	}

	if draft.EndH <= draft.StartH {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidTimeRange,
			Description: fmt.Sprintf("end hour (%d) must be after start hour (%d)", draft.EndH, draft.StartH),
		})
	}

	if draft.StartH < 0 || draft.EndH > constants.DayEndHour {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictHourOutOfRange,
			Description: fmt.Sprintf("hours must fall within 0-%d, got %d-%d", constants.DayEndHour, draft.StartH, draft.EndH),
		})
	}

	switch draft.Type {
	case constants.BlockTypeFixed, constants.BlockTypeLife, constants.BlockTypeTask, constants.BlockTypeFree:
	default:
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictUnknownType,
			Description: fmt.Sprintf("unknown block type %q", draft.Type),
		})
	}

	if len(targetDates) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNoTargetDates,
			Description: "at least one target date must be selected",
		})
	}

	return result
}

// ValidateScores checks that the overall and per-dimension review scores
// fall within 0-10.
func (v *Validator) ValidateScores(scores models.Scores) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	check := func(name string, val int) {
		if val < 0 || val > 10 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictScoreOutOfRange,
				Description: fmt.Sprintf("%s score must be within 0-10, got %d", name, val),
			})
		}
	}

	check("overall", scores.Overall)
	for _, dim := range constants.Dimensions {
		check(string(dim), scores.Dimension(dim))
	}

	return result
}
