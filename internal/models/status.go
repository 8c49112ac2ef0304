package models

import "github.com/julianstephens/timecraft/internal/constants"

// allowedTransitions is the explicit transition table for block and
// tracking statuses. Every transition is currently permitted; the table
// exists so future tightening happens in one place.
var allowedTransitions = map[constants.BlockStatus][]constants.BlockStatus{
	constants.BlockStatusPending:    {constants.BlockStatusPending, constants.BlockStatusInProgress, constants.BlockStatusCompleted, constants.BlockStatusSkipped},
	constants.BlockStatusInProgress: {constants.BlockStatusPending, constants.BlockStatusInProgress, constants.BlockStatusCompleted, constants.BlockStatusSkipped},
	constants.BlockStatusCompleted:  {constants.BlockStatusPending, constants.BlockStatusInProgress, constants.BlockStatusCompleted, constants.BlockStatusSkipped},
	constants.BlockStatusSkipped:    {constants.BlockStatusPending, constants.BlockStatusInProgress, constants.BlockStatusCompleted, constants.BlockStatusSkipped},
}

// ValidBlockStatus reports whether s is one of the four known statuses.
func ValidBlockStatus(s constants.BlockStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether a status change from from to to is allowed.
// Unknown statuses are never allowed.
func CanTransition(from, to constants.BlockStatus) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}
