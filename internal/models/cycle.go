package models

import (
	"fmt"

	"github.com/julianstephens/timecraft/internal/constants"
)

// Block is a scheduled time interval on a specific date. Hours run on a
// 0-25 scale: stored end hours above 24 mean the block runs past midnight
// (the schedule grid renders them wrapped; see utils.DisplayHour). Template
// blocks added during onboarding are the one exception: their end hour is
// normalized to the same calendar day at add time. The two conventions are
// deliberately left distinct.
type Block struct {
	ID               string              `json:"id"`
	Date             string              `json:"date"` // YYYY-MM-DD, the block's anchor day
	Title            string              `json:"title"`
	Category         constants.Category  `json:"category"`
	Type             constants.BlockType `json:"type"`
	StartH           int                 `json:"startH"`
	EndH             int                 `json:"endH"`
	EstimatedMinutes int                 `json:"estimatedMinutes"`
	ActualMinutes    *int                `json:"actualMinutes"`
	Status           constants.BlockStatus `json:"status"`
	LinkedTask       string              `json:"linkedTask,omitempty"`
	ApplyAllDays     bool                `json:"applyAllDays,omitempty"`
}

// DurationHours returns the scheduled span in hours.
func (b Block) DurationHours() int {
	return b.EndH - b.StartH
}

// Cycle is a fixed 7-day planning window. Blocks are owned exclusively by
// their cycle and discarded with it.
type Cycle struct {
	ID             string                `json:"id"`
	CycleStartDate string                `json:"cycleStartDate"` // YYYY-MM-DD
	CycleEndDate   string                `json:"cycleEndDate"`   // start + 6 days
	CycleNumber    int                   `json:"cycleNumber"`
	Status         constants.CycleStatus `json:"status"`
	Blocks         []Block               `json:"blocks"`
}

// CycleKey builds the storage key for a cycle spanning the given dates.
func CycleKey(startDate, endDate string) string {
	return fmt.Sprintf("%s%s_%s", constants.CycleKeyPrefix, startDate, endDate)
}

// HasBlock reports whether a block with the given id exists in the cycle.
func (c *Cycle) HasBlock(id string) bool {
	for _, b := range c.Blocks {
		if b.ID == id {
			return true
		}
	}
	return false
}

// FindBlock returns the block with the given id, if present.
func (c *Cycle) FindBlock(id string) (Block, bool) {
	for _, b := range c.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// BlocksForDay returns the blocks anchored on the given date, in insertion order.
func (c *Cycle) BlocksForDay(date string) []Block {
	var out []Block
	for _, b := range c.Blocks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

// IsLocked reports whether editing operations should be refused.
func (c *Cycle) IsLocked() bool {
	return c.Status == constants.CycleStatusLocked
}
