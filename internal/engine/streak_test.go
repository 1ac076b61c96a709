package engine

import (
	"testing"

	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

const habitID = "habit-1"

// completedRun builds completed entries for n consecutive days ending on end.
func completedRun(habitID, end string, n int) []models.DailyLog {
	logs := make([]models.DailyLog, 0, n)
	for i := n - 1; i >= 0; i-- {
		logs = append(logs, models.DailyLog{
			Day:     utils.AddDays(end, -i),
			HabitID: habitID,
			Status:  models.StatusCompleted,
		})
	}
	return logs
}

func TestStreak_EmptyLog(t *testing.T) {
	if got := Streak(nil, habitID, "2025-06-30"); got != 0 {
		t.Errorf("Streak on empty log = %d, want 0", got)
	}
}

func TestStreak_ConsecutiveCompletionsEndingToday(t *testing.T) {
	today := "2025-06-30"
	logs := completedRun(habitID, today, 5)

	if got := Streak(logs, habitID, today); got != 5 {
		t.Errorf("Streak = %d, want 5", got)
	}
}

func TestStreak_GracePeriodHoldsWhenTodayUnlogged(t *testing.T) {
	today := "2025-06-30"
	logs := completedRun(habitID, utils.AddDays(today, -1), 4)

	// Today has no entry yet; the run of 4 ending yesterday still counts.
	if got := Streak(logs, habitID, today); got != 4 {
		t.Errorf("Streak = %d, want 4", got)
	}
}

func TestStreak_SkipBreaksRun(t *testing.T) {
	today := "2025-06-30"
	logs := completedRun(habitID, today, 3)
	logs = append(logs, models.DailyLog{
		Day:     utils.AddDays(today, -3),
		HabitID: habitID,
		Status:  models.StatusSkipped,
	})
	// Older completions beyond the skip must not count.
	logs = append(logs, completedRun(habitID, utils.AddDays(today, -4), 10)...)

	if got := Streak(logs, habitID, today); got != 3 {
		t.Errorf("Streak = %d, want 3 (truncated at the skip)", got)
	}
}

func TestStreak_SkipTodayYieldsZero(t *testing.T) {
	// The habit was completed on days 0-20, then skipped on day 21. On day 21
	// the walk starts at today (it is logged), finds a non-completed status,
	// and stops immediately.
	start := "2025-06-01"
	day20 := utils.AddDays(start, 20)
	day21 := utils.AddDays(start, 21)

	logs := completedRun(habitID, day20, 21)

	if got := Streak(logs, habitID, day20); got != 21 {
		t.Errorf("Streak on day 20 = %d, want 21", got)
	}

	logs = append(logs, models.DailyLog{Day: day21, HabitID: habitID, Status: models.StatusSkipped})
	if got := Streak(logs, habitID, day21); got != 0 {
		t.Errorf("Streak on day 21 = %d, want 0", got)
	}
}

func TestStreak_GapStopsCount(t *testing.T) {
	today := "2025-06-30"
	logs := completedRun(habitID, today, 2)
	// A completed entry with a one-day hole before it never matches the
	// cursor, so the count stays at 2.
	logs = append(logs, models.DailyLog{
		Day:     utils.AddDays(today, -3),
		HabitID: habitID,
		Status:  models.StatusCompleted,
	})

	if got := Streak(logs, habitID, today); got != 2 {
		t.Errorf("Streak = %d, want 2 (gap terminates the walk)", got)
	}
}

func TestStreak_IgnoresOtherHabits(t *testing.T) {
	today := "2025-06-30"
	logs := completedRun("habit-other", today, 7)

	if got := Streak(logs, habitID, today); got != 0 {
		t.Errorf("Streak = %d, want 0 for a habit with no entries", got)
	}
}

func TestStreak_FutureEntriesOnly(t *testing.T) {
	today := "2025-06-30"
	logs := completedRun(habitID, utils.AddDays(today, 5), 3)

	if got := Streak(logs, habitID, today); got != 0 {
		t.Errorf("Streak = %d, want 0 for future-only entries", got)
	}
}
