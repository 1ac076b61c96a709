package engine

import (
	"testing"

	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

func TestCompletionSeries_WindowAndOrder(t *testing.T) {
	today := "2025-06-30"
	logs := []models.DailyLog{
		{Day: today, HabitID: "a", Status: models.StatusCompleted},
		{Day: today, HabitID: "b", Status: models.StatusCompleted},
		{Day: today, HabitID: "c", Status: models.StatusSkipped},
		{Day: utils.AddDays(today, -2), HabitID: "a", Status: models.StatusCompleted},
		{Day: utils.AddDays(today, -8), HabitID: "a", Status: models.StatusCompleted}, // outside window
	}

	series := CompletionSeries(logs, today, 7)
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Day != utils.AddDays(today, -6) {
		t.Errorf("series starts at %s, want %s", series[0].Day, utils.AddDays(today, -6))
	}
	if series[6].Day != today {
		t.Errorf("series ends at %s, want %s", series[6].Day, today)
	}
	if series[6].Count != 2 {
		t.Errorf("today's count = %d, want 2 (skipped does not count)", series[6].Count)
	}
	if series[4].Count != 1 {
		t.Errorf("count two days ago = %d, want 1", series[4].Count)
	}
	if series[0].Count != 0 {
		t.Errorf("count six days ago = %d, want 0", series[0].Count)
	}
	if series[6].Label != "06-30" {
		t.Errorf("label = %q, want \"06-30\"", series[6].Label)
	}
}

func correlationFixture() models.Snapshot {
	snap := models.EmptySnapshot()
	snap.Habits = []models.Habit{
		{ID: "med", Name: "Meditate"},
		{ID: "run", Name: "Run"},
	}
	days := []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"}
	moods := []models.Mood{models.MoodGreat, models.MoodGreat, models.MoodTired, models.MoodLow}
	for i, day := range days {
		snap.Logs = append(snap.Logs, models.DailyLog{Day: day, HabitID: "med", Status: models.StatusCompleted})
		snap.Moods = append(snap.Moods, models.MoodEntry{Day: day, Mood: moods[i]})
	}
	// Run completed on a day with no mood entry: excluded from the join.
	snap.Logs = append(snap.Logs, models.DailyLog{Day: "2025-06-10", HabitID: "run", Status: models.StatusCompleted})
	return snap
}

func TestMoodCorrelation_DominantMoodAndPercent(t *testing.T) {
	rows := MoodCorrelation(correlationFixture())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (every habit reported)", len(rows))
	}

	med := rows[0]
	if med.HabitName != "Meditate" {
		t.Fatalf("rows not in snapshot order: first is %q", med.HabitName)
	}
	if med.Mood != models.MoodGreat {
		t.Errorf("dominant mood = %s, want great", med.Mood)
	}
	// 2 of 4 mood-matched completions → 50%.
	if med.Percent != 50 {
		t.Errorf("percent = %d, want 50", med.Percent)
	}
	if med.Total != 4 {
		t.Errorf("total = %d, want 4", med.Total)
	}

	run := rows[1]
	if run.Total != 0 || run.Mood != "" || run.Percent != 0 {
		t.Errorf("habit without mood-matched completions = %+v, want empty result", run)
	}
}

func TestMoodCorrelation_TieBreaksByEnumOrder(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Habits = []models.Habit{{ID: "h", Name: "Habit"}}
	// One completion under "tired", one under "great": great wins the tie
	// because it comes first in the enum order, regardless of input order.
	snap.Logs = []models.DailyLog{
		{Day: "2025-06-01", HabitID: "h", Status: models.StatusCompleted},
		{Day: "2025-06-02", HabitID: "h", Status: models.StatusCompleted},
	}
	snap.Moods = []models.MoodEntry{
		{Day: "2025-06-01", Mood: models.MoodTired},
		{Day: "2025-06-02", Mood: models.MoodGreat},
	}

	rows := MoodCorrelation(snap)
	if rows[0].Mood != models.MoodGreat {
		t.Errorf("tie resolved to %s, want great (fixed enum order)", rows[0].Mood)
	}
	if rows[0].Percent != 50 {
		t.Errorf("percent = %d, want 50", rows[0].Percent)
	}
}

func TestMoodCorrelation_PercentRounds(t *testing.T) {
	snap := models.EmptySnapshot()
	snap.Habits = []models.Habit{{ID: "h", Name: "Habit"}}
	days := []string{"2025-06-01", "2025-06-02", "2025-06-03"}
	moods := []models.Mood{models.MoodGreat, models.MoodGreat, models.MoodLow}
	for i, day := range days {
		snap.Logs = append(snap.Logs, models.DailyLog{Day: day, HabitID: "h", Status: models.StatusCompleted})
		snap.Moods = append(snap.Moods, models.MoodEntry{Day: day, Mood: moods[i]})
	}

	rows := MoodCorrelation(snap)
	// 2/3 → 66.67 → 67.
	if rows[0].Percent != 67 {
		t.Errorf("percent = %d, want 67", rows[0].Percent)
	}
}
