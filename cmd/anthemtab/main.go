// Command anthemtab generates and inspects the synthesizer's lookup tables
// and carries the small text utilities used on its sources.
//
// Usage:
//
//	anthemtab generate -o rsc            # note table, pan tables and manifest
//	anthemtab notes --legacy             # note table with 440 Hz at index 48
//	anthemtab notes --list               # print note numbers, names and frequencies
//	anthemtab pantables -o rsc/pantables # the five pan tables and manifest
//	anthemtab inspect rsc                # summarize tables on disk
//	anthemtab audition --curve sqrt      # render a pan sweep to WAV
//	anthemtab stars --find -f Source.cpp # rewrite /*! ... */ comment blocks
//	anthemtab stylesort                  # print the stylesheet in sorted order
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/anthem-audio/anthem-tools/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by all subcommands.
type app struct {
	configPath string
	outDir     string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "anthemtab",
		Short: "Generate and inspect synthesizer lookup tables",
		Long: `anthemtab writes the note frequency and pan-law tables the synthesizer
loads at startup, renders pan sweeps for listening tests, and carries the
comment and stylesheet utilities used on its sources.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultFileName, "configuration file (YAML)")
	flags.StringVarP(&a.outDir, "out", "o", "", "output directory (overrides config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.generateCmd(),
		a.notesCmd(),
		a.pantablesCmd(),
		a.inspectCmd(),
		a.auditionCmd(),
		a.starsCmd(),
		a.stylesortCmd(),
	)
	return root
}

// setup builds the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.outDir != "" {
		cfg.OutputDir = a.outDir
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("output_dir", cfg.OutputDir))
	return nil
}

// ensureOutputDir creates the configured output directory.
func (a *app) ensureOutputDir() error {
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
