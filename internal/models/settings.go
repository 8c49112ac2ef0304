package models

import "github.com/julianstephens/timecraft/internal/constants"

// UserSettings is the process-wide settings singleton, created once when
// onboarding completes. JSON field names match the stored payload contract.
type UserSettings struct {
	TargetFreeHours     int    `json:"targetFreeHours"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	OnboardingDate      string `json:"onboardingDate,omitempty"` // RFC3339 timestamp
}

// DefaultSettings returns the settings used before onboarding has run.
func DefaultSettings() UserSettings {
	return UserSettings{
		TargetFreeHours: constants.DefaultTargetFreeHours,
	}
}
