package models

type LogStatus string

const (
	StatusCompleted LogStatus = "completed"
	StatusSkipped   LogStatus = "skipped"
	StatusNone      LogStatus = "none"
)

// DailyLog is a single day's record for one habit. There is at most one per
// (day, habit) pair; logging the same day again replaces the earlier entry.
//
// AppliedDelta is the discipline-score movement this entry actually caused,
// after clamping. It lets a replacement entry reverse the earlier movement
// exactly, so re-logging a day never drifts the score.
type DailyLog struct {
	Day            string    `json:"date"` // YYYY-MM-DD format
	HabitID        string    `json:"habit_id"`
	Status         LogStatus `json:"status"`
	CompletedItems []string  `json:"completed_items,omitempty"`
	AppliedDelta   float64   `json:"applied_delta"`
}

type Mood string

const (
	MoodGreat      Mood = "great"
	MoodNeutral    Mood = "neutral"
	MoodFrustrated Mood = "frustrated"
	MoodTired      Mood = "tired"
	MoodLow        Mood = "low"
)

// Moods returns the closed mood enum in its fixed declaration order. The
// order is load-bearing: dominant-mood ties resolve to the earliest mood here.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodNeutral, MoodFrustrated, MoodTired, MoodLow}
}

// MoodEmoji maps each mood to its display glyph.
var MoodEmoji = map[Mood]string{
	MoodGreat:      "😄",
	MoodNeutral:    "😐",
	MoodFrustrated: "😤",
	MoodTired:      "😴",
	MoodLow:        "😔",
}

// ValidMood reports whether m is one of the five known moods.
func ValidMood(m Mood) bool {
	for _, known := range Moods() {
		if m == known {
			return true
		}
	}
	return false
}

// MoodEntry records the user's mood for one day, last write wins.
type MoodEntry struct {
	Day  string `json:"date"` // YYYY-MM-DD format
	Mood Mood   `json:"mood"`
}
