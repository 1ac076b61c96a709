package engine

import (
	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/utils"
)

// DareOfDay selects today's micro-dare from the fixed pool, keyed by
// day-of-month so it stays stable for the whole day.
func DareOfDay(today string) string {
	t, err := utils.ParseDate(today)
	if err != nil {
		return constants.MicroDares[0]
	}
	return constants.MicroDares[t.Day()%len(constants.MicroDares)]
}

// MotivationLine picks a line from the normal or anti-motivation pool.
// The index comes from the caller so the choice stays out of the core.
func MotivationLine(antiMotivation bool, n int) string {
	pool := constants.NormalLines
	if antiMotivation {
		pool = constants.AntiMotivationLines
	}
	if n < 0 {
		n = -n
	}
	return pool[n%len(pool)]
}
