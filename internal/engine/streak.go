// Package engine holds the derived-metrics core: pure, total functions that
// turn the raw log (habit entries, moods) plus the discipline score into the
// values the rest of the app displays. Nothing in here touches storage or
// the clock; "today" always arrives as an argument.
package engine

import (
	"sort"

	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

// Streak returns the number of consecutive completed days for a habit, ending
// today or yesterday.
//
// If today has no entry yet, counting starts from yesterday: an unlogged
// today neither breaks an existing streak nor extends it. The walk moves
// backward one day per exact match and stops at the first skipped or "none"
// entry it reaches. A gap never matches the cursor, so the count naturally
// stops advancing there.
func Streak(logs []models.DailyLog, habitID, today string) int {
	var own []models.DailyLog
	loggedToday := false
	for _, l := range logs {
		if l.HabitID != habitID {
			continue
		}
		own = append(own, l)
		if l.Day == today {
			loggedToday = true
		}
	}
	sort.Slice(own, func(i, j int) bool { return own[i].Day > own[j].Day })

	cursor := today
	if !loggedToday {
		cursor = utils.AddDays(today, -1)
	}

	streak := 0
	for _, l := range own {
		if l.Status == models.StatusCompleted && l.Day == cursor {
			streak++
			cursor = utils.AddDays(cursor, -1)
		} else if l.Status == models.StatusSkipped || l.Status == models.StatusNone {
			break
		}
	}
	return streak
}
