package engine

import (
	"math"

	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

// DayCount is one point of the rolling completion series.
type DayCount struct {
	Day   string // YYYY-MM-DD
	Label string // MM-DD, for display
	Count int
}

// CompletionSeries returns completed-log counts for the trailing window of
// days ending today, oldest first. Recomputed fully on every read.
func CompletionSeries(logs []models.DailyLog, today string, window int) []DayCount {
	if window <= 0 {
		window = constants.SeriesWindowDays
	}
	series := make([]DayCount, 0, window)
	for i := window - 1; i >= 0; i-- {
		day := utils.AddDays(today, -i)
		count := 0
		for _, l := range logs {
			if l.Day == day && l.Status == models.StatusCompleted {
				count++
			}
		}
		label := day
		if len(day) > 5 {
			label = day[5:]
		}
		series = append(series, DayCount{Day: day, Label: label, Count: count})
	}
	return series
}

// HabitMood is the dominant mood observed across a habit's completions.
type HabitMood struct {
	HabitID   string
	HabitName string
	Mood      models.Mood // empty when no completion had a mood logged
	Percent   int         // share of mood-matched completions, 0-100
	Total     int         // mood-matched completions
}

// MoodCorrelation joins each habit's completed logs to the mood of the same
// day and reports the most frequent mood with its integer percentage share.
// Every habit gets a row, in snapshot order; habits with no mood-matched
// completion report an empty mood and zero percent.
//
// Ties resolve to the earliest mood in the fixed enum order, so the result
// does not depend on map iteration.
func MoodCorrelation(snap models.Snapshot) []HabitMood {
	moodByDay := make(map[string]models.Mood, len(snap.Moods))
	for _, m := range snap.Moods {
		moodByDay[m.Day] = m.Mood
	}

	out := make([]HabitMood, 0, len(snap.Habits))
	for _, h := range snap.Habits {
		counts := make(map[models.Mood]int)
		total := 0
		for _, l := range snap.Logs {
			if l.HabitID != h.ID || l.Status != models.StatusCompleted {
				continue
			}
			if mood, ok := moodByDay[l.Day]; ok {
				counts[mood]++
				total++
			}
		}

		row := HabitMood{HabitID: h.ID, HabitName: h.Name, Total: total}
		if total > 0 {
			best := 0
			for _, mood := range models.Moods() {
				if counts[mood] > best {
					best = counts[mood]
					row.Mood = mood
				}
			}
			row.Percent = int(math.Round(100 * float64(best) / float64(total)))
		}
		out = append(out, row)
	}
	return out
}
