package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/cards/internal/config"
	"github.com/Makepad-fr/cards/internal/logging"
	"github.com/Makepad-fr/cards/internal/seed"
	"github.com/Makepad-fr/cards/internal/state"
	"github.com/Makepad-fr/cards/internal/tui"
	"github.com/Makepad-fr/cards/internal/ui"
)

// App carries root flags and what PersistentPreRunE builds from them.
type App struct {
	ConfigPath string
	Theme      string
	IDs        string
	SeedFile   string
	LogFile    string
	Color      bool
	NoColor    bool
	Profile    bool

	cfg      *config.Config
	log      *slog.Logger
	closeLog io.Closer
}

// usageError marks bad invocations; main exits 2 for them.
type usageError struct{ error }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// ExitCode maps a command error to a process exit code (1 runtime, 2 usage).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "cards",
		Short:         "A list of option cards you can toggle, add, remove, reverse and reset",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  cards

  # Print the seeded cards
  cards ls

  # Apply a script of actions and print the result
  cards run toggle:0:pin add reverse

  # Show one card with its description
  cards show 2
`),
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.newStore()
			if err != nil {
				return err
			}
			var opts []tui.Option
			if app.Profile {
				opts = append(opts, tui.WithProfile())
			}
			return tui.Run(store, app.cfg.KeyMappings, opts...)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog.Close()
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.yaml (default: $CARDS_CONFIG or $XDG_CONFIG_HOME/cards/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Theme (classic|neon|mono)")
	cmd.PersistentFlags().StringVar(&app.IDs, "ids", "", "Id scheme for new items (counter|uuid)")
	cmd.PersistentFlags().StringVar(&app.SeedFile, "seed-file", "", "JSON or YAML file with the initial items")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Log file (default: ~/.cards/logs/cards.log)")
	cmd.PersistentFlags().BoolVar(&app.Color, "color", false, "Force colored output")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&app.Profile, "profile", false, "Show render timings in the TUI header (always logged at debug)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// setup loads config, applies flag overrides, then themes and logging.
func (app *App) setup() error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.Theme != "" {
		cfg.Theme = app.Theme
	}
	if app.IDs != "" {
		cfg.IDs = app.IDs
	}
	if app.SeedFile != "" {
		cfg.Seed.File = app.SeedFile
	}
	if app.LogFile != "" {
		cfg.Log.File = app.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	app.cfg = cfg

	ui.SetColorForcing(app.Color, app.NoColor)
	ui.SetTheme(cfg.Theme)

	log, closer, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	app.log, app.closeLog = log, closer
	return nil
}

// newStore wires the configured provider and id scheme into an empty store.
func (app *App) newStore() (*state.Store, error) {
	var p state.Provider
	if app.cfg.Seed.File != "" {
		f, err := seed.LoadFile(app.cfg.Seed.File, app.cfg.Seed.Options)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		p = f
	} else {
		p = seed.NewFake(app.cfg.Seed.Count, app.cfg.Seed.Options, app.cfg.Seed.RandSeed)
	}

	ids, err := state.NewIDGenerator(app.cfg.IDs)
	if err != nil {
		return nil, usageError{err}
	}
	app.log.Debug("store ready", "ids", app.cfg.IDs, "seed_file", app.cfg.Seed.File)
	return state.NewStore(state.NewReducer(p, ids), app.log), nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", cmd.UseLine())
		}
		return nil
	}
}
