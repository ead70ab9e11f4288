package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/appengine-ltd/goose-world/internal/config"
	"github.com/appengine-ltd/goose-world/internal/world"
)

type app struct {
	settings    config.Settings
	optionsPath string
	verbose     bool

	logger *zap.Logger
}

// newRootCmd builds the command tree. A nil logger is replaced by a
// production logger once flags are parsed.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}
	root := &cobra.Command{
		Use:   "goose-world",
		Short: "Generate and inspect Untitled Goose Game randomizer worlds",
		Long: `goose-world builds the item pool, location set and logic for an
Untitled Goose Game multiworld slot.

Settings can also come from the environment: GOOSE_WORLD_OPTIONS,
GOOSE_WORLD_SEED, GOOSE_WORLD_OUTPUT and GOOSE_WORLD_VERBOSE. Flags win.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.optionsPath, "options", "", "YAML options file (defaults apply when empty)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.generateCmd(),
		a.checkCmd(),
		a.idsCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	a.settings = settings
	if !cmd.Flags().Changed("options") {
		a.optionsPath = settings.OptionsPath
	}
	if !cmd.Flags().Changed("verbose") {
		a.verbose = a.verbose || settings.Verbose
	}
	if a.logger != nil {
		return nil
	}

	cfg := zap.NewProductionConfig()
	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) options() (world.Options, error) {
	opts, err := config.LoadOptions(a.optionsPath)
	if err != nil {
		return world.Options{}, err
	}
	a.logger.Debug("options loaded",
		zap.String("path", a.optionsPath),
		zap.Stringer("goal", opts.Goal),
		zap.Stringer("starting_area", opts.StartingArea),
	)
	return opts, nil
}

// output opens path for writing; "-" or empty is the command's stdout.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
