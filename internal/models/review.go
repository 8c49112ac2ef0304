package models

import "github.com/julianstephens/timecraft/internal/constants"

// DimensionScore is one axis of a weekly review: the 0-10 score plus an
// optional free-text comment.
type DimensionScore struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// ReviewRecord is one entry of the append-only review log, keyed by cycle
// number. A review is saved even when flagged low quality.
type ReviewRecord struct {
	ID                string                                   `json:"id"`
	CycleNumber       int                                      `json:"cycleNumber"`
	CycleStartDate    string                                   `json:"cycleStartDate"`
	CycleEndDate      string                                   `json:"cycleEndDate"`
	OverallScore      int                                      `json:"overallScore"`
	DimensionScores   map[constants.Dimension]DimensionScore   `json:"dimensionScores"`
	AcceptedProposals []int                                    `json:"acceptedProposals"`
	DurationSeconds   int                                      `json:"durationSeconds"`
	IsLowQuality      bool                                     `json:"isLowQuality"`
	RecordedAt        string                                   `json:"recordedAt"` // RFC3339 timestamp
}

// Proposal is a rule-generated coaching suggestion. Proposals are ephemeral
// and recomputed on every score change; Tag is the stable key for accepting
// or dismissing one (list positions are not stable across regeneration).
type Proposal struct {
	Tag    constants.Dimension `json:"tag"`
	Body   string              `json:"body"`
	Impact string              `json:"impact"` // descriptive only, non-causal
}
