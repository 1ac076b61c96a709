package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	today := ctx.Today(snap)

	// Time-driven experiment transitions happen on read, not on a timer.
	swept := engine.Reduce(snap, engine.ConcludeExpiredExperiments{Today: today})
	if changed := activeCount(swept) != activeCount(snap); changed {
		if err := ctx.Store.Save(swept); err != nil {
			return err
		}
	}
	snap = swept

	hour := time.Now().Hour()
	greeting := "Finish Strong"
	if hour < 12 {
		greeting = "Rise and Conquer"
	} else if hour < 17 {
		greeting = "Keep the Momentum"
	}
	fmt.Printf("%s — %s\n", today, greeting)

	anti := snap.User != nil && snap.User.AntiMotivation
	fmt.Printf("%q\n\n", engine.MotivationLine(anti, rand.Int()))

	if engine.EmergencyDue(snap.Logs, today) {
		days, _ := engine.DaysInactive(snap.Logs, today)
		fmt.Printf("⚠ It's been %d days. No guilt. No shame. Just motion.\n\n", days)
	}

	if len(snap.Habits) == 0 {
		fmt.Println("No habits in the vault yet. Add one with 'habita habit add'.")
	}
	for _, h := range snap.Habits {
		status := "·"
		if log, ok := snap.LogFor(today, h.ID); ok {
			switch log.Status {
			case models.StatusCompleted:
				status = "✓"
			case models.StatusSkipped:
				status = "✗"
			}
		}
		streak := engine.Streak(snap.Logs, h.ID, today)
		fmt.Printf("%s %-24s %3dd streak  score %3.0f\n", status, h.Name, streak, h.DisciplineScore)
	}

	if mood, ok := snap.MoodFor(today); ok {
		fmt.Printf("\nMood: %s %s\n", models.MoodEmoji[mood], mood)
	} else {
		fmt.Println("\nMood: not set (habita mood <mood>)")
	}

	dare := engine.DareOfDay(today)
	if snap.MicroDareCompletedDate == today {
		fmt.Printf("Dare: %s ✓\n", dare)
	} else {
		fmt.Printf("Dare: %s\n", dare)
	}
	return nil
}

func activeCount(snap models.Snapshot) int {
	n := 0
	for _, e := range snap.Experiments {
		if e.Active {
			n++
		}
	}
	return n
}
