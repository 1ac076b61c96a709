package engine

import (
	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/models"
)

// Action is a single user-driven state transition. Reduce applies it to a
// snapshot and returns the successor; the store owns the read/write
// lifecycle around it.
type Action interface {
	isAction()
}

type AddHabit struct {
	Habit models.Habit
}

// DeleteHabit removes the habit only. Historical log entries stay behind and
// keep counting in day-level aggregates such as the inactivity check.
type DeleteHabit struct {
	HabitID string
}

type LogHabit struct {
	HabitID        string
	Day            string
	Status         models.LogStatus
	CompletedItems []string
}

type SetMood struct {
	Day  string
	Mood models.Mood
}

type SetUser struct {
	User models.User
}

type ToggleAntiMotivation struct{}

type AddMessages struct {
	Messages []models.FutureMessage
}

type CompleteDare struct {
	Day string
}

type StartExperiment struct {
	Experiment models.Experiment
}

type LogExperimentDay struct {
	ExperimentID string
	Log          models.ExperimentLog
}

type ConcludeExperiment struct {
	ExperimentID string
	Conclusion   string
}

// ConcludeExpiredExperiments sweeps active experiments past their end date.
type ConcludeExpiredExperiments struct {
	Today string
}

func (AddHabit) isAction()                   {}
func (DeleteHabit) isAction()                {}
func (LogHabit) isAction()                   {}
func (SetMood) isAction()                    {}
func (SetUser) isAction()                    {}
func (ToggleAntiMotivation) isAction()       {}
func (AddMessages) isAction()                {}
func (CompleteDare) isAction()               {}
func (StartExperiment) isAction()            {}
func (LogExperimentDay) isAction()           {}
func (ConcludeExperiment) isAction()         {}
func (ConcludeExpiredExperiments) isAction() {}

// Reduce applies an action to a snapshot and returns the new snapshot. The
// input is never mutated. Actions referencing unknown ids are no-ops: inputs
// are validated before they reach the core.
func Reduce(snap models.Snapshot, action Action) models.Snapshot {
	next := cloneSnapshot(snap)

	switch a := action.(type) {
	case AddHabit:
		next.Habits = append(next.Habits, a.Habit)

	case DeleteHabit:
		habits := next.Habits[:0]
		for _, h := range next.Habits {
			if h.ID != a.HabitID {
				habits = append(habits, h)
			}
		}
		next.Habits = habits

	case LogHabit:
		next = reduceLogHabit(next, a)

	case SetMood:
		moods := next.Moods[:0]
		for _, m := range next.Moods {
			if m.Day != a.Day {
				moods = append(moods, m)
			}
		}
		next.Moods = append(moods, models.MoodEntry{Day: a.Day, Mood: a.Mood})

	case SetUser:
		u := a.User
		next.User = &u

	case ToggleAntiMotivation:
		if next.User != nil {
			u := *next.User
			u.AntiMotivation = !u.AntiMotivation
			next.User = &u
		}

	case AddMessages:
		next.Messages = append(next.Messages, a.Messages...)

	case CompleteDare:
		next.MicroDareCompletedDate = a.Day

	case StartExperiment:
		next.Experiments = append(next.Experiments, a.Experiment)

	case LogExperimentDay:
		for i, e := range next.Experiments {
			if e.ID != a.ExperimentID || !e.Active {
				continue
			}
			logs := append([]models.ExperimentLog(nil), e.Logs...)
			replaced := false
			for j, l := range logs {
				if l.Day == a.Log.Day {
					logs[j] = a.Log
					replaced = true
					break
				}
			}
			if !replaced && len(logs) < constants.ExperimentDays {
				logs = append(logs, a.Log)
			}
			next.Experiments[i].Logs = logs
		}

	case ConcludeExperiment:
		for i, e := range next.Experiments {
			if e.ID == a.ExperimentID {
				next.Experiments[i].Active = false
				next.Experiments[i].Conclusion = a.Conclusion
			}
		}

	case ConcludeExpiredExperiments:
		next.Experiments = ConcludeExpired(next.Experiments, a.Today)
	}

	return next
}

// reduceLogHabit replaces any existing entry for (day, habit), reversing the
// score movement the replaced entry applied, then applies the new status.
// Re-logging a day is therefore idempotent with respect to the score.
func reduceLogHabit(snap models.Snapshot, a LogHabit) models.Snapshot {
	idx := -1
	for i, h := range snap.Habits {
		if h.ID == a.HabitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap
	}

	score := snap.Habits[idx].DisciplineScore
	logs := snap.Logs[:0]
	for _, l := range snap.Logs {
		if l.Day == a.Day && l.HabitID == a.HabitID {
			score -= l.AppliedDelta
			continue
		}
		logs = append(logs, l)
	}

	newScore, applied := ApplyScore(score, a.Status)
	snap.Habits[idx].DisciplineScore = newScore
	snap.Logs = append(logs, models.DailyLog{
		Day:            a.Day,
		HabitID:        a.HabitID,
		Status:         a.Status,
		CompletedItems: a.CompletedItems,
		AppliedDelta:   applied,
	})
	return snap
}

func cloneSnapshot(s models.Snapshot) models.Snapshot {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Habits = append([]models.Habit(nil), s.Habits...)
	out.Logs = append([]models.DailyLog(nil), s.Logs...)
	out.Moods = append([]models.MoodEntry(nil), s.Moods...)
	out.Messages = append([]models.FutureMessage(nil), s.Messages...)
	out.Experiments = append([]models.Experiment(nil), s.Experiments...)
	return out
}
