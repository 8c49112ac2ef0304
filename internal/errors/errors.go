package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/timecraft/internal/logger"
)

// Sentinel errors for the recoverable failure classes the core reports.
// Operations wrap these with context via fmt.Errorf and %w; callers branch
// with errors.Is.
var (
	// ErrValidation signals malformed user input. It is reported before any
	// mutation; no partial state change occurs.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateBlock signals a template id collision; the original
	// working set is untouched.
	ErrDuplicateBlock = errors.New("duplicate block id")

	// ErrMissingPrerequisite signals absent upstream state (no completed
	// onboarding, no current cycle). Callers redirect or initialize
	// rather than crash.
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrPersistenceWrite signals a rejected store write. The in-memory
	// change is retained but not durable; the caller must re-attempt the
	// save explicitly.
	ErrPersistenceWrite = errors.New("persistence write failed")

	// ErrCycleLocked signals that an edit was refused because the cycle is
	// locked. Surfaced as a blocked state, not a hard failure.
	ErrCycleLocked = errors.New("cycle is locked")
)

// Is reports whether err matches target, re-exported so callers don't need
// a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
