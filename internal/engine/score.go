package engine

import "github.com/iksdev/habita/internal/models"

const (
	scoreMin       = 0.0
	scoreMax       = 100.0
	completedDelta = 1.5
	skippedDelta   = -0.5
)

// ApplyScore nudges a discipline score for one log event and clamps the
// result into [0,100]. The second return value is the movement actually
// applied after clamping; a same-day re-log subtracts it to undo this event
// before applying the new one (see Reduce).
func ApplyScore(score float64, status models.LogStatus) (next float64, applied float64) {
	var delta float64
	switch status {
	case models.StatusCompleted:
		delta = completedDelta
	case models.StatusSkipped:
		delta = skippedDelta
	}
	next = clamp(score+delta, scoreMin, scoreMax)
	return next, next - score
}

// ApplyLog returns a copy of the habit with its discipline score moved for
// the given status.
func ApplyLog(habit models.Habit, status models.LogStatus) models.Habit {
	habit.DisciplineScore, _ = ApplyScore(habit.DisciplineScore, status)
	return habit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
