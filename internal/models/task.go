package models

import "github.com/julianstephens/timecraft/internal/constants"

// Task lives independently of cycles; blocks reference tasks weakly by id
// (lookup only, no ownership).
type Task struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Category         constants.Category    `json:"category"`
	EstimatedMinutes int                   `json:"estimatedMinutes"`
	Priority         string                `json:"priority"`
	Status           constants.BlockStatus `json:"status"`
}
