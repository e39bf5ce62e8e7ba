package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/stride-sh/stride/internal/cli"
	"github.com/stride-sh/stride/internal/constants"
	apperrors "github.com/stride-sh/stride/internal/errors"
	"github.com/stride-sh/stride/internal/logger"
	"github.com/stride-sh/stride/internal/manager"
	"github.com/stride-sh/stride/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.db or .json)." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init       cli.InitCmd       `cmd:"" help:"Initialize stride storage."`
	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Check      cli.CheckCmd      `cmd:"" help:"Check off one or more habits for a period."`
	Undo       cli.UndoCmd       `cmd:"" help:"Remove a habit's completion for a period."`
	Streaks    cli.StreaksCmd    `cmd:"" help:"Show current and longest streaks for all habits."`
	Longest    cli.LongestCmd    `cmd:"" help:"Show the longest streak, overall or per habit."`
	Broken     cli.BrokenCmd     `cmd:"" help:"List habits whose streak has lapsed."`
	Struggling cli.StrugglingCmd `cmd:"" help:"List habits falling short of their own record."`
	Compare    cli.CompareCmd    `cmd:"" help:"Compare habits side by side."`
	Rankings   cli.RankingsCmd   `cmd:"" help:"Rank habits by streaks and completions."`
	Overview   cli.OverviewCmd   `cmd:"" help:"Summarize habits of one periodicity."`
	Stats      cli.StatsCmd      `cmd:"" help:"Show collection-wide statistics."`
	Trend      cli.TrendCmd      `cmd:"" help:"Chart daily completion counts over a trailing window."`
	Seed       cli.SeedCmd       `cmd:"" help:"Populate the store with sample habits."`
	Export     cli.ExportCmd     `cmd:"" help:"Export habits to JSON or CSV."`
	Migrate    cli.MigrateCmd    `cmd:"" help:"Copy all habits into a new store file."`
	Habit      struct {
		Add      cli.HabitAddCmd      `cmd:"" help:"Add a new habit."`
		List     cli.HabitListCmd     `cmd:"" help:"List all habits."`
		Edit     cli.HabitEditCmd     `cmd:"" help:"Update a habit's description."`
		Describe cli.HabitDescribeCmd `cmd:"" help:"Show one habit in detail."`
		Delete   cli.HabitDeleteCmd   `cmd:"" help:"Delete a habit and its history."`
	} `cmd:"" help:"Manage habits."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with period-based streaks"),
		kong.UsageOnError(),
		kong.Vars{
			"version":              constants.Version,
			"config_path":          constants.DefaultConfigPath,
			"struggling_threshold": fmt.Sprintf("%g", constants.DefaultStrugglingThreshold),
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.NewStore(CLI.Config)
	appCtx := &cli.Context{
		Store:   store,
		Manager: manager.New(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
