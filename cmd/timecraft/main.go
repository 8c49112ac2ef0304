package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/timecraft/internal/cli"
	"github.com/julianstephens/timecraft/internal/constants"
	apperrors "github.com/julianstephens/timecraft/internal/errors"
	"github.com/julianstephens/timecraft/internal/logger"
	"github.com/julianstephens/timecraft/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/timecraft/timecraft.db"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize timecraft storage."`
	Onboard cli.OnboardCmd `cmd:"" help:"Set a free-time target and seed the first cycle."`
	Status  cli.StatusCmd  `cmd:"" help:"Show the current cycle at a glance." default:"1"`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive day tracker."`
	Lock    cli.LockCmd    `cmd:"" help:"Toggle the current cycle between draft and locked."`
	Track   cli.TrackCmd   `cmd:"" help:"Record how a block actually went."`
	Review  cli.ReviewCmd  `cmd:"" help:"Run the weekly review and roll into the next cycle."`
	Block   struct {
		Add    cli.BlockAddCmd    `cmd:"" help:"Add a block to the current cycle."`
		Edit   cli.BlockEditCmd   `cmd:"" help:"Replace an existing block."`
		Delete cli.BlockDeleteCmd `cmd:"" help:"Delete a block."`
		List   cli.BlockListCmd   `cmd:"" help:"List the cycle's blocks by day."`
	} `cmd:"" help:"Manage schedule blocks."`
	Task struct {
		Add  cli.TaskAddCmd  `cmd:"" help:"Add a task to the backlog."`
		List cli.TaskListCmd `cmd:"" help:"List backlog tasks."`
	} `cmd:"" help:"Manage backlog tasks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("timecraft"),
		kong.Description("Weekly cycle planner / time-blocking companion"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension
	var kv storage.KV
	if strings.HasSuffix(CLI.Config, ".json") {
		kv = storage.NewJSONStore(CLI.Config)
	} else {
		kv = storage.NewSQLiteStore(CLI.Config)
	}
	store := storage.NewStore(kv)

	// Every command except init expects an already-initialized store.
	if ctx.Command() != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	appCtx := cli.NewContext(store, CLI.Debug)

	err := ctx.Run(appCtx)
	if apperrors.Is(err, apperrors.ErrMissingPrerequisite) {
		fmt.Fprintln(os.Stderr, "Onboarding hasn't run yet. Start with 'timecraft onboard'.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
