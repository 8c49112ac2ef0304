package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/models"
)

// Store is the typed facade over the key-value port. An absent key yields
// the zero/default value with ok=false rather than an error, so partially
// written state after a crash never takes a read path down. Only corrupt
// payloads surface as errors.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Init initializes the backing store.
func (s *Store) Init() error {
	return s.kv.Init()
}

// Load opens an existing backing store.
func (s *Store) Load() error {
	return s.kv.Load()
}

// Close releases the backing store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.kv.Path()
}

func (s *Store) getJSON(key string, out interface{}) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("corrupt payload under %q: %w", key, err)
	}
	return true, nil
}

func marshal(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}
	return string(raw), nil
}

func (s *Store) setJSON(key string, v interface{}) error {
	raw, err := marshal(v)
	if err != nil {
		return err
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	return nil
}

// Settings returns the user settings. ok is false when onboarding has not
// run yet; the returned value then carries defaults.
func (s *Store) Settings() (models.UserSettings, bool, error) {
	settings := models.DefaultSettings()
	ok, err := s.getJSON(constants.KeyUserSettings, &settings)
	if err != nil {
		return models.DefaultSettings(), false, err
	}
	if settings.TargetFreeHours <= 0 {
		settings.TargetFreeHours = constants.DefaultTargetFreeHours
	}
	return settings, ok, nil
}

func (s *Store) SaveSettings(settings models.UserSettings) error {
	return s.setJSON(constants.KeyUserSettings, settings)
}

// CurrentCycleID returns the current-cycle pointer. The pointer is stored
// as a raw string, not JSON.
func (s *Store) CurrentCycleID() (string, bool, error) {
	return s.kv.Get(constants.KeyCurrentCycle)
}

// Cycle loads a cycle by its storage key.
func (s *Store) Cycle(id string) (models.Cycle, bool, error) {
	var c models.Cycle
	ok, err := s.getJSON(id, &c)
	if err != nil {
		return models.Cycle{}, false, err
	}
	if ok && c.Blocks == nil {
		c.Blocks = []models.Block{}
	}
	return c, ok, nil
}

func (s *Store) SaveCycle(c models.Cycle) error {
	return s.setJSON(c.ID, c)
}

// SaveCycleAsCurrent persists the cycle and repoints the current-cycle
// pointer to it in one atomic batch.
func (s *Store) SaveCycleAsCurrent(c models.Cycle) error {
	raw, err := marshal(c)
	if err != nil {
		return err
	}
	batch := map[string]string{
		c.ID:                      raw,
		constants.KeyCurrentCycle: c.ID,
	}
	if err := s.kv.SetAll(batch); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	return nil
}

// Tasks returns the task list, empty when none have been saved.
func (s *Store) Tasks() ([]models.Task, error) {
	tasks := []models.Task{}
	if _, err := s.getJSON(constants.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) SaveTasks(tasks []models.Task) error {
	return s.setJSON(constants.KeyTasks, tasks)
}

// Trackings returns the outcome records, empty when none have been saved.
func (s *Store) Trackings() (models.Trackings, error) {
	trackings := models.Trackings{}
	if _, err := s.getJSON(constants.KeyTrackings, &trackings); err != nil {
		return nil, err
	}
	return trackings, nil
}

func (s *Store) SaveTrackings(trackings models.Trackings) error {
	return s.setJSON(constants.KeyTrackings, trackings)
}

// Reviews returns the append-only review log in recorded order.
func (s *Store) Reviews() ([]models.ReviewRecord, error) {
	reviews := []models.ReviewRecord{}
	if _, err := s.getJSON(constants.KeyReviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// appendReview enforces the one-record-per-cycle invariant and returns the
// extended log.
func (s *Store) appendReview(record models.ReviewRecord) ([]models.ReviewRecord, error) {
	reviews, err := s.Reviews()
	if err != nil {
		return nil, err
	}
	for _, r := range reviews {
		if r.CycleNumber == record.CycleNumber {
			return nil, fmt.Errorf("%w: cycle %d already has a review", apperrors.ErrValidation, record.CycleNumber)
		}
	}
	return append(reviews, record), nil
}

// AppendReview adds one record to the review log, rejecting a second
// record for the same cycle number.
func (s *Store) AppendReview(record models.ReviewRecord) error {
	reviews, err := s.appendReview(record)
	if err != nil {
		return err
	}
	return s.setJSON(constants.KeyReviews, reviews)
}

// OnboardingBatch writes the completed settings, the seeded first cycle
// and the current-cycle pointer in a single atomic batch.
func (s *Store) OnboardingBatch(settings models.UserSettings, first models.Cycle) error {
	settingsRaw, err := marshal(settings)
	if err != nil {
		return err
	}
	cycleRaw, err := marshal(first)
	if err != nil {
		return err
	}

	batch := map[string]string{
		constants.KeyUserSettings: settingsRaw,
		first.ID:                  cycleRaw,
		constants.KeyCurrentCycle: first.ID,
	}
	if err := s.kv.SetAll(batch); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	return nil
}

// RolloverBatch writes the completed cycle, the review log extended with
// its record, the next cycle, and the repointed current-cycle pointer in a
// single atomic batch.
func (s *Store) RolloverBatch(completed models.Cycle, record models.ReviewRecord, next models.Cycle) error {
	reviews, err := s.appendReview(record)
	if err != nil {
		return err
	}

	completedRaw, err := marshal(completed)
	if err != nil {
		return err
	}
	reviewsRaw, err := marshal(reviews)
	if err != nil {
		return err
	}
	nextRaw, err := marshal(next)
	if err != nil {
		return err
	}

	batch := map[string]string{
		completed.ID:              completedRaw,
		constants.KeyReviews:      reviewsRaw,
		next.ID:                   nextRaw,
		constants.KeyCurrentCycle: next.ID,
	}
	if err := s.kv.SetAll(batch); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	return nil
}
