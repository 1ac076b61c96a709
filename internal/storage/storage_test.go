package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksdev/habita/internal/models"
)

func sampleSnapshot() models.Snapshot {
	created, _ := time.Parse(time.RFC3339, "2025-06-01T09:30:00Z")
	snap := models.EmptySnapshot()
	snap.User = &models.User{
		ID: "u1", Username: "iks", Email: "iks@example.com",
		JoinDate: "2025-06-01", Timezone: "Europe/Berlin", Onboarded: true,
	}
	snap.Habits = []models.Habit{
		{
			ID: "med", Name: "Meditate", Description: "calm", StartDate: "2025-06-01",
			DisciplineScore: 42.5, Frequency: models.FrequencyDaily,
			Goal:      &models.Goal{Value: 20, Unit: "minutes", Period: "day"},
			Checklist: []models.ChecklistItem{{ID: "c1", Text: "sit down"}},
		},
		{ID: "run", Name: "Run", StartDate: "2025-06-02", Private: true},
	}
	snap.Logs = []models.DailyLog{
		{Day: "2025-06-03", HabitID: "med", Status: models.StatusCompleted, AppliedDelta: 1.5, CompletedItems: []string{"c1"}},
		{Day: "2025-06-04", HabitID: "med", Status: models.StatusSkipped, AppliedDelta: -0.5},
	}
	snap.Moods = []models.MoodEntry{{Day: "2025-06-03", Mood: models.MoodGreat}}
	snap.Messages = []models.FutureMessage{
		{ID: "m1", TargetDate: "2025-07-01", Content: "keep going", AuthorVersion: models.AuthorPast, CreatedAt: created},
	}
	snap.Experiments = []models.Experiment{
		{
			ID: "e1", Title: "Cold showers", StartDate: "2025-06-01", EndDate: "2025-06-08",
			Logs:   []models.ExperimentLog{{Day: "2025-06-02", Completed: true, Mood: models.MoodGreat, Energy: 4}},
			Active: true,
		},
	}
	snap.MicroDareCompletedDate = "2025-06-03"
	return snap
}

func assertSnapshotEqual(t *testing.T, got, want models.Snapshot) {
	t.Helper()
	if got.User == nil || *got.User != *want.User {
		t.Errorf("user = %+v, want %+v", got.User, want.User)
	}
	if len(got.Habits) != len(want.Habits) {
		t.Fatalf("habits = %d, want %d", len(got.Habits), len(want.Habits))
	}
	for i := range want.Habits {
		if got.Habits[i].ID != want.Habits[i].ID ||
			got.Habits[i].DisciplineScore != want.Habits[i].DisciplineScore ||
			got.Habits[i].Private != want.Habits[i].Private {
			t.Errorf("habit %d = %+v, want %+v", i, got.Habits[i], want.Habits[i])
		}
	}
	if got.Habits[0].Goal == nil || *got.Habits[0].Goal != *want.Habits[0].Goal {
		t.Errorf("goal = %+v, want %+v", got.Habits[0].Goal, want.Habits[0].Goal)
	}
	if len(got.Habits[0].Checklist) != 1 || got.Habits[0].Checklist[0].Text != "sit down" {
		t.Errorf("checklist = %+v", got.Habits[0].Checklist)
	}
	if len(got.Logs) != len(want.Logs) {
		t.Fatalf("logs = %d, want %d", len(got.Logs), len(want.Logs))
	}
	for i := range want.Logs {
		if got.Logs[i].Day != want.Logs[i].Day ||
			got.Logs[i].Status != want.Logs[i].Status ||
			got.Logs[i].AppliedDelta != want.Logs[i].AppliedDelta {
			t.Errorf("log %d = %+v, want %+v", i, got.Logs[i], want.Logs[i])
		}
	}
	if len(got.Logs[0].CompletedItems) != 1 || got.Logs[0].CompletedItems[0] != "c1" {
		t.Errorf("completed items = %+v", got.Logs[0].CompletedItems)
	}
	if len(got.Moods) != 1 || got.Moods[0].Mood != models.MoodGreat {
		t.Errorf("moods = %+v", got.Moods)
	}
	if len(got.Messages) != 1 || !got.Messages[0].CreatedAt.Equal(want.Messages[0].CreatedAt) {
		t.Errorf("messages = %+v", got.Messages)
	}
	if len(got.Experiments) != 1 {
		t.Fatalf("experiments = %d, want 1", len(got.Experiments))
	}
	if len(got.Experiments[0].Logs) != 1 || got.Experiments[0].Logs[0].Energy != 4 {
		t.Errorf("experiment logs = %+v", got.Experiments[0].Logs)
	}
	if got.MicroDareCompletedDate != want.MicroDareCompletedDate {
		t.Errorf("dare marker = %q, want %q", got.MicroDareCompletedDate, want.MicroDareCompletedDate)
	}
}

func TestJSONStore_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	want := sampleSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSnapshotEqual(t, got, want)
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init succeeded, want already-initialized error")
	}
}

func TestJSONStore_LoadWithoutInitFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.json")
	store := NewJSONStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("Load succeeded without Init")
	}
}

func TestJSONStore_EmptySnapshotAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.User != nil {
		t.Error("fresh snapshot has a user")
	}
	if snap.Habits == nil || snap.Logs == nil || snap.Moods == nil {
		t.Error("fresh snapshot has nil collections")
	}
}

func TestJSONStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habita.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after commit")
	}
}

func TestSQLiteStore_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	want := sampleSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSnapshotEqual(t, got, want)
}

func TestSQLiteStore_SaveReplacesWholeSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.Save(sampleSnapshot()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	// Second snapshot drops a habit; the stale row must not survive.
	next := sampleSnapshot()
	next.Habits = next.Habits[:1]
	if err := store.Save(next); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Habits) != 1 {
		t.Errorf("habits = %d, want 1 (whole-snapshot replace)", len(got.Habits))
	}
}

func TestSQLiteStore_LoadWithoutInitFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habita.db")
	store := NewSQLiteStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("Load succeeded without Init")
	}
}
