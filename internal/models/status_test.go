package models

import (
	"testing"

	"github.com/julianstephens/timecraft/internal/constants"
)

func TestValidBlockStatus(t *testing.T) {
	for _, s := range []constants.BlockStatus{
		constants.BlockStatusPending,
		constants.BlockStatusInProgress,
		constants.BlockStatusCompleted,
		constants.BlockStatusSkipped,
	} {
		if !ValidBlockStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}

	if ValidBlockStatus("done") {
		t.Error("unknown status should not validate")
	}
	if ValidBlockStatus("") {
		t.Error("empty status should not validate")
	}
}

func TestCanTransition_AllKnownPairsAllowed(t *testing.T) {
	statuses := []constants.BlockStatus{
		constants.BlockStatusPending,
		constants.BlockStatusInProgress,
		constants.BlockStatusCompleted,
		constants.BlockStatusSkipped,
	}

	// The table currently permits every pair, including reopening a
	// completed block.
	for _, from := range statuses {
		for _, to := range statuses {
			if !CanTransition(from, to) {
				t.Errorf("expected %s -> %s to be allowed", from, to)
			}
		}
	}

	if CanTransition("done", constants.BlockStatusPending) {
		t.Error("unknown source status should never transition")
	}
	if CanTransition(constants.BlockStatusPending, "done") {
		t.Error("unknown target status should never be reachable")
	}
}
