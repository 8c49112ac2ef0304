package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/logger"
	"github.com/julianstephens/timecraft/internal/models"
	"github.com/julianstephens/timecraft/internal/storage"
	"github.com/julianstephens/timecraft/internal/utils"
	"github.com/julianstephens/timecraft/internal/validation"
)

// Scheduler creates, validates, edits and deletes time blocks. All cycle
// mutations persist through the injected store before returning.
type Scheduler struct {
	store     *storage.Store
	validator *validation.Validator
}

func New(store *storage.Store) *Scheduler {
	return &Scheduler{
		store:     store,
		validator: validation.New(),
	}
}

// AddTemplateBlock appends a template to the onboarding working set. A
// template whose end hour runs past 24 (e.g. sleep 23-31) is normalized
// onto the same calendar day, while the estimate keeps the full span.
// The schedule grid stores hours up to 25 instead and wraps only when
// rendering; which convention owns stored data is an open point, so the
// divergence is kept rather than reconciled.
func (s *Scheduler) AddTemplateBlock(working []models.Block, tpl models.Block) ([]models.Block, error) {
	for _, b := range working {
		if b.ID == tpl.ID {
			return working, fmt.Errorf("%w: %s", apperrors.ErrDuplicateBlock, tpl.ID)
		}
	}

	tpl.EstimatedMinutes = (tpl.EndH - tpl.StartH) * 60
	tpl.EndH = utils.WrapTemplateEnd(tpl.EndH)
	if tpl.Type == "" {
		tpl.Type = constants.BlockTypeLife
	}

	return append(working, tpl), nil
}

// RemoveTemplateBlock drops a template from the working set; no-op when
// the id is absent.
func (s *Scheduler) RemoveTemplateBlock(working []models.Block, id string) []models.Block {
	out := working[:0]
	for _, b := range working {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

// ExpandToCycle instantiates templates across the seven days of a cycle
// starting on startDate. Templates marked apply-all-days produce one
// instance per day with a composite id; the rest land on day 0 only,
// keeping their template id. The result is 7*recurring + non-recurring
// instances, all pending with no recorded actuals.
func (s *Scheduler) ExpandToCycle(templates []models.Block, startDate string) ([]models.Block, error) {
	days, err := utils.CycleDays(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid cycle start date: %w", err)
	}

	var result []models.Block
	for i, day := range days {
		for _, tpl := range templates {
			if !tpl.ApplyAllDays {
				continue
			}
			inst := tpl
			inst.ID = fmt.Sprintf("%s_%s", tpl.ID, day.ISO)
			inst.Date = day.ISO
			inst.ActualMinutes = nil
			inst.Status = constants.BlockStatusPending
			result = append(result, inst)
		}

		if i == 0 {
			for _, tpl := range templates {
				if tpl.ApplyAllDays {
					continue
				}
				inst := tpl
				inst.Date = day.ISO
				inst.ActualMinutes = nil
				inst.Status = constants.BlockStatusPending
				result = append(result, inst)
			}
		}
	}

	return result, nil
}

// SeedCycle writes the expanded template instances into a cycle. Seeding
// into a cycle that already holds any of the generated ids is refused, so
// re-running the expansion cannot silently duplicate blocks.
func (s *Scheduler) SeedCycle(cycle *models.Cycle, templates []models.Block) error {
	instances, err := s.ExpandToCycle(templates, cycle.CycleStartDate)
	if err != nil {
		return err
	}

	for _, inst := range instances {
		if cycle.HasBlock(inst.ID) {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateBlock, inst.ID)
		}
	}

	cycle.Blocks = append(cycle.Blocks, instances...)
	if err := s.store.SaveCycleAsCurrent(*cycle); err != nil {
		return err
	}

	logger.Info("seeded cycle", "cycle", cycle.ID, "blocks", len(instances))
	return nil
}

// UpsertBlock adds a block to every target date, or replaces an existing
// block when editID is set. Validation runs before any mutation; a locked
// cycle refuses the edit as a blocked state.
func (s *Scheduler) UpsertBlock(cycle *models.Cycle, draft validation.BlockDraft, editID string, targetDates []string) error {
	if cycle.IsLocked() {
		return apperrors.ErrCycleLocked
	}

	if result := s.validator.ValidateBlockDraft(draft, targetDates); result.HasConflicts() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.TrimSpace(result.FormatReport()))
	}

	if editID != "" {
		kept := cycle.Blocks[:0]
		for _, b := range cycle.Blocks {
			if b.ID != editID {
				kept = append(kept, b)
			}
		}
		cycle.Blocks = kept
	}

	category := draft.Category
	if category == "" {
		// Task blocks count toward work; otherwise the category mirrors the type.
		if draft.Type == constants.BlockTypeTask {
			category = constants.CategoryWork
		} else {
			category = constants.Category(draft.Type)
		}
	}

	for _, date := range targetDates {
		cycle.Blocks = append(cycle.Blocks, models.Block{
			ID:               newBlockID(date),
			Date:             date,
			Title:            draft.Title,
			Type:             draft.Type,
			Category:         category,
			StartH:           draft.StartH,
			EndH:             draft.EndH,
			EstimatedMinutes: (draft.EndH - draft.StartH) * 60,
			ActualMinutes:    nil,
			Status:           constants.BlockStatusPending,
			LinkedTask:       draft.LinkedTask,
		})
	}

	return s.store.SaveCycleAsCurrent(*cycle)
}

// DeleteBlock removes a block from the cycle; deleting an absent id is a
// no-op that still leaves the cycle persisted.
func (s *Scheduler) DeleteBlock(cycle *models.Cycle, blockID string) error {
	if cycle.IsLocked() {
		return apperrors.ErrCycleLocked
	}

	kept := cycle.Blocks[:0]
	for _, b := range cycle.Blocks {
		if b.ID != blockID {
			kept = append(kept, b)
		}
	}
	cycle.Blocks = kept

	return s.store.SaveCycleAsCurrent(*cycle)
}

// AddTask appends a task to the independent task list. An unparseable
// estimate falls back to the default rather than failing the add.
func (s *Scheduler) AddTask(title string, category constants.Category, estimate string, priority string) (models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, fmt.Errorf("%w: task title must not be empty", apperrors.ErrValidation)
	}

	estimatedMinutes := constants.DefaultTaskEstimateMin
	if v, err := strconv.Atoi(strings.TrimSpace(estimate)); err == nil && v > 0 {
		estimatedMinutes = v
	}

	task := models.Task{
		ID:               fmt.Sprintf("task_%d", time.Now().UnixMilli()),
		Title:            title,
		Category:         category,
		EstimatedMinutes: estimatedMinutes,
		Priority:         priority,
		Status:           constants.BlockStatusPending,
	}

	tasks, err := s.store.Tasks()
	if err != nil {
		return models.Task{}, err
	}
	tasks = append(tasks, task)
	if err := s.store.SaveTasks(tasks); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func newBlockID(date string) string {
	return fmt.Sprintf("blk_%s_%s", date, uuid.NewString()[:8])
}
