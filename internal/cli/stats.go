package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
)

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statsMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statsBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := ctx.Today(snap)

	fmt.Println(statsTitleStyle.Render("Completions, last 7 days"))
	series := engine.CompletionSeries(snap.Logs, today, constants.SeriesWindowDays)
	peak := 1
	for _, p := range series {
		if p.Count > peak {
			peak = p.Count
		}
	}
	for _, p := range series {
		bar := strings.Repeat("█", p.Count*20/peak)
		fmt.Printf("%s %s %d\n", statsMutedStyle.Render(p.Label), statsBarStyle.Render(bar), p.Count)
	}

	fmt.Println()
	fmt.Println(statsTitleStyle.Render("Mood correlation"))
	rows := engine.MoodCorrelation(snap)
	if len(rows) == 0 {
		fmt.Println(statsMutedStyle.Render("No habits yet."))
	}
	for _, r := range rows {
		if r.Total == 0 {
			fmt.Printf("%-24s %s\n", r.HabitName, statsMutedStyle.Render("no mood-matched completions"))
			continue
		}
		fmt.Printf("%-24s %s %-10s %3d%% of %d completions\n",
			r.HabitName, models.MoodEmoji[r.Mood], r.Mood, r.Percent, r.Total)
	}

	fmt.Println()
	fmt.Println(statsTitleStyle.Render("Discipline meters"))
	for _, h := range snap.Habits {
		filled := int(h.DisciplineScore) / 5
		meter := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
		fmt.Printf("%-24s %s %3.0f\n", h.Name, statsBarStyle.Render(meter), h.DisciplineScore)
	}
	if len(snap.Habits) > 0 {
		fmt.Println(statsMutedStyle.Render("These meters grow with consistency and never reset."))
	}
	return nil
}
