package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tally/internal/cli"
	"github.com/julianstephens/tally/internal/constants"
	"github.com/julianstephens/tally/internal/errors"
	"github.com/julianstephens/tally/internal/habit"
	"github.com/julianstephens/tally/internal/logger"
	"github.com/julianstephens/tally/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path." type:"path" default:"${db_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize tally storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	List   cli.ListCmd   `cmd:"" help:"List habits with completion state for a day."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Log    cli.LogCmd    `cmd:"" help:"Show habit log (ASCII history)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tally"),
		kong.Description("Personal habit tracker with daily streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": "v0.1.0",
			"db_path": constants.DefaultDBPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}); err != nil {
		errors.Fatal(err)
	}

	store := sqlite.NewStore(CLI.DB)
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Service: habit.NewService(store),
	}

	errors.Fatal(ctx.Run(appCtx))
}
