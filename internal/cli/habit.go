package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit. Historical log entries are kept."`
}

type HabitAddCmd struct {
	Name        string   `arg:"" help:"Habit name."`
	Description string   `help:"Why this habit matters." default:""`
	Private     bool     `help:"Hide this habit from shared views."`
	Frequency   string   `help:"daily, weekly, or monthly." default:""`
	GoalValue   int      `help:"Goal quantity (e.g. 20)."`
	GoalUnit    string   `help:"Goal unit (e.g. minutes)." default:""`
	GoalPeriod  string   `help:"Goal period (e.g. day)." default:""`
	TimeOfDay   []string `help:"Preferred times of day (morning, afternoon, evening)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateHabitName(c.Name); err != nil {
		return err
	}
	switch c.Frequency {
	case "", "daily", "weekly", "monthly":
	default:
		return fmt.Errorf("invalid frequency %q (expected daily, weekly, or monthly)", c.Frequency)
	}

	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if _, ok := snap.HabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		StartDate:   ctx.Today(snap),
		Private:     c.Private,
		Frequency:   models.Frequency(c.Frequency),
		TimesOfDay:  c.TimeOfDay,
	}
	if c.GoalValue > 0 {
		habit.Goal = &models.Goal{Value: c.GoalValue, Unit: c.GoalUnit, Period: c.GoalPeriod}
	}

	snap = engine.Reduce(snap, engine.AddHabit{Habit: habit})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if len(snap.Habits) == 0 {
		fmt.Println("No habits in the vault yet.")
		return nil
	}

	today := ctx.Today(snap)
	for _, h := range snap.Habits {
		streak := engine.Streak(snap.Logs, h.ID, today)
		flags := ""
		if h.Private {
			flags = " [PRIVATE]"
		}
		fmt.Printf("%-24s %3dd streak  score %3.0f%s\n", h.Name, streak, h.DisciplineScore, flags)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	habit, ok := snap.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	snap = engine.Reduce(snap, engine.DeleteHabit{HabitID: habit.ID})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (log history kept)\n", c.Name)
	return nil
}
