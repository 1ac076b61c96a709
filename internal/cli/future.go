package cli

import (
	"fmt"

	"github.com/iksdev/habita/internal/engine"
)

type FutureCmd struct{}

func (c *FutureCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)

	if msg, offset, ok := engine.RevealMessage(snap.Messages, today); ok {
		fmt.Printf("A message from %d days ago:\n\n  %q\n\n", offset, msg.Content)
	} else {
		fmt.Println("No message surfaces today. Keep writing the story.")
	}

	replays := engine.HabitReplays(snap.Habits, today)
	if len(replays) == 0 {
		fmt.Println("\nNo habit has matured yet. Replays unlock at 21 days.")
		return nil
	}

	for _, r := range replays {
		fmt.Printf("\n%s (%d days)\n", r.Name, r.AgeDays)
		for _, beat := range r.Story {
			fmt.Printf("  %s\n", beat)
		}
	}
	return nil
}

type EmergencyCmd struct{}

func (c *EmergencyCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)

	days, ok := engine.DaysInactive(snap.Logs, today)
	if !ok {
		fmt.Println("Nothing logged yet — no inactivity to measure.")
		return nil
	}
	if days >= 2 {
		fmt.Printf("It's been %d days since your last log.\n", days)
		for i, h := range snap.Habits {
			if i >= 3 {
				break
			}
			fmt.Printf("  Remember why you started: %s\n", h.Name)
		}
		fmt.Println("No guilt. No shame. Just motion.")
	} else {
		fmt.Printf("Last log was %d day(s) ago. You're still here.\n", days)
	}
	return nil
}
