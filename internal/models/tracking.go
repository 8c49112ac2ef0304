package models

import "github.com/julianstephens/timecraft/internal/constants"

// TrackingEntry records the real-world outcome of one block instance on one
// date. ActualMinutes stays nil when the user gave no parseable number; it
// is never coerced to zero.
type TrackingEntry struct {
	Status        constants.BlockStatus `json:"status"`
	ActualMinutes *int                  `json:"actualMinutes"`
	Focus         int                   `json:"focus"`  // 1-5
	Energy        int                   `json:"energy"` // 1-5
	Note          string                `json:"note,omitempty"`
	RecordedAt    string                `json:"recordedAt"` // RFC3339 timestamp
}

// Trackings maps date -> blockID -> entry. It is stored under its own key,
// not inside the cycle's blocks.
type Trackings map[string]map[string]TrackingEntry

// ForDay returns the entries recorded for the given date. The result may be
// nil; callers treat a missing day as empty.
func (t Trackings) ForDay(date string) map[string]TrackingEntry {
	return t[date]
}

// Put upserts the entry for (date, blockID), allocating the day map on
// first write.
func (t Trackings) Put(date, blockID string, entry TrackingEntry) {
	day, ok := t[date]
	if !ok {
		day = make(map[string]TrackingEntry)
		t[date] = day
	}
	day[blockID] = entry
}
