package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
	"github.com/iksdev/habita/internal/validation"
)

type ExperimentCmd struct {
	Start    ExperimentStartCmd    `cmd:"" help:"Start a 7-day experiment."`
	Log      ExperimentLogCmd      `cmd:"" help:"Log a day of an active experiment."`
	List     ExperimentListCmd     `cmd:"" help:"List experiments."`
	Conclude ExperimentConcludeCmd `cmd:"" help:"Conclude an experiment with a verdict."`
}

type ExperimentStartCmd struct {
	Title string `arg:"" help:"Experiment title, e.g. 'Cold showers for 7 days'."`
}

func (c *ExperimentStartCmd) Run(ctx *Context) error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("experiment title cannot be empty")
	}

	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)

	exp := models.Experiment{
		ID:        uuid.New().String(),
		Title:     c.Title,
		StartDate: today,
		EndDate:   utils.AddDays(today, constants.ExperimentDays),
		Logs:      []models.ExperimentLog{},
		Active:    true,
	}
	snap = engine.Reduce(snap, engine.StartExperiment{Experiment: exp})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Started experiment %q. Phase 1 ends %s.\n", c.Title, exp.EndDate)
	return nil
}

type ExperimentLogCmd struct {
	Title     string `arg:"" help:"Experiment title."`
	Completed bool   `help:"Whether you followed through today." default:"true" negatable:""`
	Mood      string `help:"Mood for the day." default:""`
	Energy    int    `help:"Energy 1-5." default:"3"`
	Date      string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ExperimentLogCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)

	exp, ok := experimentByTitle(snap, c.Title)
	if !ok {
		return fmt.Errorf("experiment %q not found", c.Title)
	}
	if !exp.Active {
		return fmt.Errorf("experiment %q is already concluded", c.Title)
	}

	day := c.Date
	if day == "" {
		day = today
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	entry := models.ExperimentLog{Day: day, Completed: c.Completed, Energy: c.Energy}
	if c.Mood != "" {
		mood := models.Mood(c.Mood)
		if err := validation.ValidateMood(mood); err != nil {
			return err
		}
		entry.Mood = mood
	}
	if err := validation.ValidateEnergy(c.Energy); err != nil {
		return err
	}

	snap = engine.Reduce(snap, engine.LogExperimentDay{ExperimentID: exp.ID, Log: entry})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Logged %s for experiment %q\n", day, c.Title)
	return nil
}

type ExperimentListCmd struct{}

func (c *ExperimentListCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)

	swept := engine.Reduce(snap, engine.ConcludeExpiredExperiments{Today: today})
	if activeCount(swept) != activeCount(snap) {
		if err := ctx.Store.Save(swept); err != nil {
			return err
		}
	}
	snap = swept

	if len(snap.Experiments) == 0 {
		fmt.Println("No experiments yet.")
		return nil
	}

	for _, e := range snap.Experiments {
		state := "concluded"
		if e.Active {
			state = "active"
		}
		fmt.Printf("%s [%s] %s → %s, %d/%d days logged\n",
			e.Title, state, e.StartDate, e.EndDate, len(e.Logs), constants.ExperimentDays)
		if !e.Active && e.Conclusion != "" {
			fmt.Printf("  verdict: %s\n", e.Conclusion)
		}
	}
	return nil
}

type ExperimentConcludeCmd struct {
	Title      string `arg:"" help:"Experiment title."`
	Conclusion string `arg:"" help:"What the trial taught you."`
}

func (c *ExperimentConcludeCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	exp, ok := experimentByTitle(snap, c.Title)
	if !ok {
		return fmt.Errorf("experiment %q not found", c.Title)
	}

	snap = engine.Reduce(snap, engine.ConcludeExperiment{ExperimentID: exp.ID, Conclusion: c.Conclusion})
	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Concluded experiment %q\n", c.Title)
	return nil
}

func experimentByTitle(snap models.Snapshot, title string) (models.Experiment, bool) {
	for _, e := range snap.Experiments {
		if e.Title == title {
			return e, true
		}
	}
	return models.Experiment{}, false
}
