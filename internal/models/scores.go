package models

import "github.com/julianstephens/timecraft/internal/constants"

// Scores holds the overall satisfaction score plus the five dimension
// scores a review is rated on, each 0-10.
type Scores struct {
	Overall       int
	Work          int
	Relationships int
	Health        int
	Growth        int
	FreeTime      int
}

// DefaultScores returns the slider defaults shown when a review starts.
func DefaultScores() Scores {
	return Scores{
		Overall:       7,
		Work:          7,
		Relationships: 7,
		Health:        7,
		Growth:        7,
		FreeTime:      7,
	}
}

// Dimension returns the score for one of the five scored dimensions.
// Unknown dimensions score zero.
func (s Scores) Dimension(dim constants.Dimension) int {
	switch dim {
	case constants.DimWork:
		return s.Work
	case constants.DimRelationships:
		return s.Relationships
	case constants.DimHealth:
		return s.Health
	case constants.DimGrowth:
		return s.Growth
	case constants.DimFreeTime:
		return s.FreeTime
	default:
		return 0
	}
}

// SetDimension updates the score for one of the five scored dimensions.
func (s *Scores) SetDimension(dim constants.Dimension, val int) {
	switch dim {
	case constants.DimWork:
		s.Work = val
	case constants.DimRelationships:
		s.Relationships = val
	case constants.DimHealth:
		s.Health = val
	case constants.DimGrowth:
		s.Growth = val
	case constants.DimFreeTime:
		s.FreeTime = val
	}
}
