package cli

import (
	"fmt"

	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/validation"
)

type LogCmd struct {
	Name   string   `arg:"" help:"Habit name."`
	Status string   `help:"completed or skipped." enum:"completed,skipped" default:"completed"`
	Date   string   `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Items  []string `help:"Checklist item ids completed today."`
}

func (c *LogCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	habit, ok := snap.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day := c.Date
	if day == "" {
		day = ctx.Today(snap)
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	status := models.LogStatus(c.Status)
	if err := validation.ValidateStatus(status); err != nil {
		return err
	}

	snap = engine.Reduce(snap, engine.LogHabit{
		HabitID:        habit.ID,
		Day:            day,
		Status:         status,
		CompletedItems: c.Items,
	})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	updated, _ := snap.HabitByID(habit.ID)
	streak := engine.Streak(snap.Logs, habit.ID, ctx.Today(snap))
	fmt.Printf("Logged %q as %s for %s (streak %dd, score %.0f)\n", c.Name, status, day, streak, updated.DisciplineScore)
	return nil
}

type MoodCmd struct {
	Mood string `arg:"" help:"One of great, neutral, frustrated, tired, low."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MoodCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	mood := models.Mood(c.Mood)
	if err := validation.ValidateMood(mood); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Today(snap)
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	snap = engine.Reduce(snap, engine.SetMood{Day: day, Mood: mood})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Mood for %s: %s %s\n", day, models.MoodEmoji[mood], mood)
	return nil
}
