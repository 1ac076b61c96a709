package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/iksdev/habita/internal/cli"
	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/errors"
	"github.com/iksdev/habita/internal/logger"
	"github.com/iksdev/habita/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .db suffix selects SQLite, anything else a JSON snapshot file." type:"string" default:"~/.config/habita/habita.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init       cli.InitCmd       `cmd:"" help:"Initialize storage and create your profile."`
	Today      cli.TodayCmd      `cmd:"" help:"Show today's habits, mood, and dare." default:"1"`
	Habit      cli.HabitCmd      `cmd:"" help:"Manage habits."`
	Log        cli.LogCmd        `cmd:"" help:"Log a habit as completed or skipped."`
	Mood       cli.MoodCmd       `cmd:"" help:"Record today's mood."`
	Stats      cli.StatsCmd      `cmd:"" help:"Completion trend, mood correlation, discipline meters."`
	Future     cli.FutureCmd     `cmd:"" help:"Messages from your past self and habit replays."`
	Experiment cli.ExperimentCmd `cmd:"" help:"Run 7-day behavioral experiments."`
	Dare       cli.DareCmd       `cmd:"" help:"Show or complete today's micro-dare."`
	Emergency  cli.EmergencyCmd  `cmd:"" help:"Check how long it's been since your last log."`
	Mode       cli.ModeCmd       `cmd:"" help:"Toggle anti-motivation mode."`
	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive dashboard."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A sanctuary for self-discipline. No noise. Just consistency."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	path := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(path)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		store = storage.NewSQLiteStore(path)
	} else {
		store = storage.NewJSONStore(path)
	}
	appCtx := &cli.Context{Store: store, Debug: CLI.Debug}
	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
