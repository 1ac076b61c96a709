package engine

import (
	"testing"

	"github.com/iksdev/habita/internal/constants"
)

func TestDareOfDay_StableWithinDay(t *testing.T) {
	a := DareOfDay("2025-06-09")
	b := DareOfDay("2025-06-09")
	if a != b {
		t.Errorf("dare changed within a day: %q vs %q", a, b)
	}
	// Day-of-month 9 % 8 = 1.
	if a != constants.MicroDares[1] {
		t.Errorf("dare = %q, want %q", a, constants.MicroDares[1])
	}
}

func TestMotivationLine_PoolSelection(t *testing.T) {
	normal := MotivationLine(false, 0)
	anti := MotivationLine(true, 0)
	if normal != constants.NormalLines[0] {
		t.Errorf("normal line = %q", normal)
	}
	if anti != constants.AntiMotivationLines[0] {
		t.Errorf("anti line = %q", anti)
	}
	// Negative indexes must not panic.
	_ = MotivationLine(false, -17)
}
