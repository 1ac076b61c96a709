package cli

import (
	"fmt"

	"github.com/iksdev/habita/internal/engine"
)

type DareCmd struct {
	Done bool `help:"Mark today's dare as completed."`
}

func (c *DareCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)
	dare := engine.DareOfDay(today)

	if c.Done {
		snap = engine.Reduce(snap, engine.CompleteDare{Day: today})
		if err := ctx.Store.Save(snap); err != nil {
			return err
		}
		fmt.Printf("Dare done: %s\n", dare)
		return nil
	}

	if snap.MicroDareCompletedDate == today {
		fmt.Printf("%s ✓ (already done today)\n", dare)
	} else {
		fmt.Println(dare)
	}
	return nil
}

type ModeCmd struct{}

// ModeCmd flips between normal encouragement and anti-motivation lines.
func (c *ModeCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	if snap.User == nil {
		return fmt.Errorf("no profile yet, run 'habita init' first")
	}

	snap = engine.Reduce(snap, engine.ToggleAntiMotivation{})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	if snap.User.AntiMotivation {
		fmt.Println("Dark mode. Motivation is a lie. Discipline is the truth.")
	} else {
		fmt.Println("Soft mode. You've got this. One day at a time.")
	}
	return nil
}
