package engine

import "github.com/iksdev/habita/internal/models"

// ConcludeExpired flips active experiments whose end date has passed to
// concluded. The transition is one-way; concluded experiments are never
// resurrected. Returns a new slice, input untouched.
func ConcludeExpired(experiments []models.Experiment, today string) []models.Experiment {
	out := make([]models.Experiment, len(experiments))
	copy(out, experiments)
	for i := range out {
		if out[i].Active && today > out[i].EndDate {
			out[i].Active = false
		}
	}
	return out
}
