package engine

import (
	"fmt"

	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

// DaysInactive returns the days elapsed since the most recent log entry of
// any habit and any status. The second return value is false when there are
// no entries at all, in which case the emergency gate never triggers.
func DaysInactive(logs []models.DailyLog, today string) (int, bool) {
	last := ""
	for _, l := range logs {
		if l.Day > last {
			last = l.Day
		}
	}
	if last == "" {
		return 0, false
	}
	return utils.DaysBetween(last, today), true
}

// EmergencyDue reports whether the inactivity prompt should be shown:
// the most recent entry is at least two days old.
func EmergencyDue(logs []models.DailyLog, today string) bool {
	days, ok := DaysInactive(logs, today)
	return ok && days >= constants.InactivityThresholdDays
}

// RevealMessage finds the message to surface today: for each reveal offset in
// priority order, the first message written exactly that many days ago. The
// smallest matching offset wins even when several offsets match.
func RevealMessage(messages []models.FutureMessage, today string) (models.FutureMessage, int, bool) {
	for _, offset := range constants.MessageRevealOffsets {
		want := utils.AddDays(today, -offset)
		for _, m := range messages {
			if m.CreatedAt.Format(constants.DateFormat) == want {
				return m, offset, true
			}
		}
	}
	return models.FutureMessage{}, 0, false
}

// Replay is the generated narrative for a matured habit.
type Replay struct {
	HabitID string
	Name    string
	AgeDays int
	Story   []string
}

// HabitReplays returns a narrative for every habit at least 21 days old.
// Younger habits are simply absent, not shown as locked.
func HabitReplays(habits []models.Habit, today string) []Replay {
	var replays []Replay
	for _, h := range habits {
		age := utils.DaysBetween(h.StartDate, today)
		if age < constants.ReplayMinAgeDays {
			continue
		}
		replays = append(replays, Replay{
			HabitID: h.ID,
			Name:    h.Name,
			AgeDays: age,
			Story: []string{
				"Day 1: You decided this mattered.",
				"Day 7: You showed up when it was hard.",
				fmt.Sprintf("Day %d: This is now part of who you are.", age),
			},
		})
	}
	return replays
}
