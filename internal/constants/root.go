package constants

const (
	AppName           = "habita"
	DefaultConfigPath = "~/.config/habita/habita.json"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// InactivityThresholdDays is the number of days without any log entry
	// after which the emergency prompt is shown.
	InactivityThresholdDays = 2

	// ReplayMinAgeDays is the minimum habit age before its narrative replay unlocks.
	ReplayMinAgeDays = 21

	// ExperimentDays is the fixed length of a behavioral experiment.
	ExperimentDays = 7

	// SeriesWindowDays is the trailing window for the completion trend series.
	SeriesWindowDays = 7
)

// MessageRevealOffsets are the day offsets, in priority order, at which a
// future message becomes visible again. Smaller offsets win when several match.
var MessageRevealOffsets = []int{7, 30, 90, 365}

// OnboardingTargetOffsets are the day offsets assigned to the goal messages
// written during onboarding, in the order the goals are entered.
var OnboardingTargetOffsets = []int{30, 90, 365}
