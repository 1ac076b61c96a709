// Package validation rejects malformed input at the CLI edge. The engine
// assumes validated inputs and does not re-check them.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/models"
)

// ValidateHabitName rejects empty or whitespace-only names.
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// ValidateDate rejects strings that are not YYYY-MM-DD dates.
func ValidateDate(day string) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return nil
}

// ValidateStatus accepts only completed and skipped; "none" is the absence of
// a log, not something the user records.
func ValidateStatus(status models.LogStatus) error {
	switch status {
	case models.StatusCompleted, models.StatusSkipped:
		return nil
	}
	return fmt.Errorf("invalid status %q (expected completed or skipped)", status)
}

// ValidateMood rejects moods outside the closed enum.
func ValidateMood(mood models.Mood) error {
	if !models.ValidMood(mood) {
		return fmt.Errorf("invalid mood %q (expected one of great, neutral, frustrated, tired, low)", mood)
	}
	return nil
}

// ValidateEnergy rejects energy ratings outside 1-5.
func ValidateEnergy(energy int) error {
	if energy < 1 || energy > 5 {
		return fmt.Errorf("invalid energy %d (expected 1-5)", energy)
	}
	return nil
}
