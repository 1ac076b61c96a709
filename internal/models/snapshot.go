package models

// Snapshot is the aggregate root and the unit of persistence. Every mutation
// replaces the whole snapshot; derived views are recomputed from it on read.
type Snapshot struct {
	User                   *User           `json:"user"`
	Habits                 []Habit         `json:"habits"`
	Logs                   []DailyLog      `json:"logs"`
	Moods                  []MoodEntry     `json:"moods"`
	Messages               []FutureMessage `json:"messages"`
	Experiments            []Experiment    `json:"experiments"`
	MicroDareCompletedDate string          `json:"micro_dare_completed_date,omitempty"`
}

// EmptySnapshot returns the well-defined zero state: no user, empty collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Habits:      []Habit{},
		Logs:        []DailyLog{},
		Moods:       []MoodEntry{},
		Messages:    []FutureMessage{},
		Experiments: []Experiment{},
	}
}

// HabitByID returns the habit with the given id, if present.
func (s Snapshot) HabitByID(id string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// HabitByName returns the habit with the given name, if present.
func (s Snapshot) HabitByName(name string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return Habit{}, false
}

// LogFor returns the log entry for the given day and habit, if present.
func (s Snapshot) LogFor(day, habitID string) (DailyLog, bool) {
	for _, l := range s.Logs {
		if l.Day == day && l.HabitID == habitID {
			return l, true
		}
	}
	return DailyLog{}, false
}

// MoodFor returns the mood recorded for the given day, if any.
func (s Snapshot) MoodFor(day string) (Mood, bool) {
	for _, m := range s.Moods {
		if m.Day == day {
			return m.Mood, true
		}
	}
	return "", false
}

// ExperimentByID returns the experiment with the given id, if present.
func (s Snapshot) ExperimentByID(id string) (Experiment, bool) {
	for _, e := range s.Experiments {
		if e.ID == id {
			return e, true
		}
	}
	return Experiment{}, false
}
