package engine

import (
	"testing"
	"time"

	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

func TestDaysInactive_NoLogsNeverTriggers(t *testing.T) {
	if _, ok := DaysInactive(nil, "2025-06-30"); ok {
		t.Error("DaysInactive reported a value for an empty log")
	}
	if EmergencyDue(nil, "2025-06-30") {
		t.Error("EmergencyDue = true for an empty log")
	}
}

func TestEmergencyDue_Boundary(t *testing.T) {
	today := "2025-06-30"
	tests := []struct {
		name    string
		lastLog string
		want    bool
	}{
		{"logged today", today, false},
		{"one day ago", utils.AddDays(today, -1), false},
		{"exactly two days ago", utils.AddDays(today, -2), true},
		{"three days ago", utils.AddDays(today, -3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := []models.DailyLog{
				{Day: "2025-01-01", HabitID: "old", Status: models.StatusCompleted},
				{Day: tt.lastLog, HabitID: "h", Status: models.StatusSkipped},
			}
			if got := EmergencyDue(logs, today); got != tt.want {
				t.Errorf("EmergencyDue(last=%s) = %v, want %v", tt.lastLog, got, tt.want)
			}
		})
	}
}

func messageCreatedDaysAgo(today string, days int) models.FutureMessage {
	created, _ := utils.ParseDate(utils.AddDays(today, -days))
	return models.FutureMessage{
		ID:        "msg-" + utils.AddDays(today, -days),
		Content:   "hold the line",
		CreatedAt: created.Add(9 * time.Hour),
	}
}

func TestRevealMessage_ExactOffsetMatch(t *testing.T) {
	today := "2025-06-30"
	msgs := []models.FutureMessage{messageCreatedDaysAgo(today, 30)}

	msg, offset, ok := RevealMessage(msgs, today)
	if !ok {
		t.Fatal("RevealMessage found nothing")
	}
	if offset != 30 {
		t.Errorf("offset = %d, want 30", offset)
	}
	if msg.Content != "hold the line" {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestRevealMessage_SmallerOffsetWins(t *testing.T) {
	today := "2025-06-30"
	msgs := []models.FutureMessage{
		messageCreatedDaysAgo(today, 90),
		messageCreatedDaysAgo(today, 7),
	}

	_, offset, ok := RevealMessage(msgs, today)
	if !ok || offset != 7 {
		t.Errorf("offset = %d (ok=%v), want 7 (smaller offsets take priority)", offset, ok)
	}
}

func TestRevealMessage_NoMatch(t *testing.T) {
	today := "2025-06-30"
	msgs := []models.FutureMessage{messageCreatedDaysAgo(today, 12)}

	if _, _, ok := RevealMessage(msgs, today); ok {
		t.Error("RevealMessage matched a message at a non-reveal offset")
	}
}

func TestHabitReplays_MaturityThreshold(t *testing.T) {
	today := "2025-06-30"
	habits := []models.Habit{
		{ID: "young", Name: "Young", StartDate: utils.AddDays(today, -20)},
		{ID: "ripe", Name: "Ripe", StartDate: utils.AddDays(today, -21)},
		{ID: "old", Name: "Old", StartDate: utils.AddDays(today, -100)},
	}

	replays := HabitReplays(habits, today)
	if len(replays) != 2 {
		t.Fatalf("replays = %d, want 2 (young habit simply absent)", len(replays))
	}
	if replays[0].HabitID != "ripe" || replays[0].AgeDays != 21 {
		t.Errorf("first replay = %+v, want ripe at 21 days", replays[0])
	}
	if replays[1].AgeDays != 100 {
		t.Errorf("second replay age = %d, want 100", replays[1].AgeDays)
	}
	if len(replays[1].Story) != 3 {
		t.Fatalf("story beats = %d, want 3", len(replays[1].Story))
	}
	if replays[1].Story[2] != "Day 100: This is now part of who you are." {
		t.Errorf("final beat = %q", replays[1].Story[2])
	}
}
