package review

import (
	"fmt"
	"time"

	"github.com/julianstephens/timecraft/internal/constants"
	"github.com/julianstephens/timecraft/internal/cycle"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/validation"
)

// AllGoodMessage is shown instead of the proposal list when no rule fires.
const AllGoodMessage = "Scores look solid across the board. Keep the same rhythm next week."

// dimensionProposals holds the one canned proposal per dimension, in the
// fixed order proposals are listed (which differs from the evaluation
// order of the dimensions themselves).
var dimensionProposals = []models.Proposal{
	{
		Tag:    constants.DimHealth,
		Body:   "Consider adding an hour to a sleep block, or moving bedtime 30 minutes earlier.",
		Impact: "health +2pts",
	},
	{
		Tag:    constants.DimFreeTime,
		Body:   "Push one low-priority task to the next cycle and grow a free block instead.",
		Impact: "freeTime +1.5pts",
	},
	{
		Tag:    constants.DimRelationships,
		Body:   "Schedule 30 minutes once this week for friends or family.",
		Impact: "relationships +2pts",
	},
	{
		Tag:    constants.DimGrowth,
		Body:   "A 15-minute learning block every morning adds up to 1.75 hours of growth a week.",
		Impact: "growth +1.5pts",
	},
	{
		Tag:    constants.DimWork,
		Body:   "Reserve the first two hours of the morning for deep-focus work; it beats the afternoon.",
		Impact: "work +2pts",
	},
}

var overallProposal = models.Proposal{
	Tag:    constants.DimOverall,
	Body:   "Pick one thing not to do next week. Cutting scope is crafting too.",
	Impact: "overall +1pts",
}

// Engine turns dimension scores into coaching proposals and validated
// review records. Proposal generation is a pure function of the scores and
// is re-run on every score change.
type Engine struct {
	lifecycle *cycle.Manager
	validator *validation.Validator
}

func New(lifecycle *cycle.Manager) *Engine {
	return &Engine{
		lifecycle: lifecycle,
		validator: validation.New(),
	}
}

// Generate emits one proposal per dimension scoring below the threshold,
// in the fixed display order, plus the generic reduce-scope proposal when
// the overall score is low. An empty result means all good.
func (e *Engine) Generate(scores models.Scores) []models.Proposal {
	var out []models.Proposal
	for _, p := range dimensionProposals {
		if scores.Dimension(p.Tag) < constants.ProposalScoreThreshold {
			out = append(out, p)
		}
	}
	if scores.Overall < constants.OverallScoreThreshold {
		out = append(out, overallProposal)
	}
	return out
}

// ProposalByTag finds a generated proposal by its stable dimension tag.
// Tags, not list positions, key accept/dismiss decisions: positions shift
// whenever a score change regenerates the list.
func ProposalByTag(proposals []models.Proposal, tag constants.Dimension) (models.Proposal, bool) {
	for _, p := range proposals {
		if p.Tag == tag {
			return p, true
		}
	}
	return models.Proposal{}, false
}

// BuildRecord assembles the review record for a cycle. Accepted proposals
// arrive as tags and are stored as their indices in the list generated
// from these exact scores, preserving the stored payload shape. A review
// finished in under the threshold is flagged low quality but still saved
// with all its content.
func (e *Engine) BuildRecord(c models.Cycle, scores models.Scores, comments map[constants.Dimension]string, acceptedTags []constants.Dimension, elapsedSeconds int) (models.ReviewRecord, error) {
	if result := e.validator.ValidateScores(scores); result.HasConflicts() {
		return models.ReviewRecord{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, result.Conflicts[0].Description)
	}

	dimScores := make(map[constants.Dimension]models.DimensionScore, len(constants.Dimensions))
	for _, dim := range constants.Dimensions {
		dimScores[dim] = models.DimensionScore{
			Score:   scores.Dimension(dim),
			Comment: comments[dim],
		}
	}

	proposals := e.Generate(scores)
	accepted := []int{}
	for _, tag := range acceptedTags {
		for i, p := range proposals {
			if p.Tag == tag {
				accepted = append(accepted, i)
				break
			}
		}
	}

	return models.ReviewRecord{
		ID:                fmt.Sprintf("review_cycle%d", c.CycleNumber),
		CycleNumber:       c.CycleNumber,
		CycleStartDate:    c.CycleStartDate,
		CycleEndDate:      c.CycleEndDate,
		OverallScore:      scores.Overall,
		DimensionScores:   dimScores,
		AcceptedProposals: accepted,
		DurationSeconds:   elapsedSeconds,
		IsLowQuality:      elapsedSeconds < constants.LowQualityReviewSec,
		RecordedAt:        time.Now().Format(time.RFC3339),
	}, nil
}

// Save persists the record and rolls the cycle over to the next week.
// Returns the new current cycle.
func (e *Engine) Save(c models.Cycle, record models.ReviewRecord) (models.Cycle, error) {
	return e.lifecycle.CompleteAndRollover(c, record)
}

// DimensionStats backs the review sidebar with actuals drawn from the
// cycle's blocks and tracked outcomes.
type DimensionStats struct {
	CompletedBlocks int
	TotalBlocks     int
	SleepBlocks     int
	ExerciseBlocks  int
	FreeHours       int
}

// Stats derives the per-dimension actuals for a cycle.
func Stats(c models.Cycle, trackings models.Trackings) DimensionStats {
	stats := DimensionStats{TotalBlocks: len(c.Blocks)}

	for _, day := range trackings {
		for _, entry := range day {
			if entry.Status == constants.BlockStatusCompleted {
				stats.CompletedBlocks++
			}
		}
	}

	for _, b := range c.Blocks {
		switch {
		case b.Category == constants.CategorySleep:
			stats.SleepBlocks++
		case b.Category == constants.CategoryExercise:
			stats.ExerciseBlocks++
		}
		if b.Type == constants.BlockTypeFree {
			stats.FreeHours += b.DurationHours()
		}
	}

	return stats
}
