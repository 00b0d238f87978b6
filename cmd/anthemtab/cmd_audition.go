package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anthem-audio/anthem-tools/internal/audition"
	"github.com/anthem-audio/anthem-tools/internal/notes"
	"github.com/anthem-audio/anthem-tools/internal/pan"
)

func (a *app) auditionCmd() *cobra.Command {
	var (
		tablesDir string
		curve     string
		note      int
		rate      int
		bits      int
		seconds   float64
	)

	cmd := &cobra.Command{
		Use:   "audition",
		Short: "Render a tone swept across a pan table to a WAV file",
		Long: `Renders a sine tone at the frequency of a MIDI note, panned from hard left
to hard right through the chosen pan table. With --tables the note and pan
tables are loaded from disk, otherwise they are computed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := a.cfg.Audition
			flags := cmd.Flags()
			if flags.Changed("curve") {
				settings.Curve = curve
			}
			if flags.Changed("note") {
				settings.Note = note
			}
			if flags.Changed("rate") {
				settings.SampleRate = rate
			}
			if flags.Changed("bits") {
				settings.BitDepth = bits
			}
			if flags.Changed("seconds") {
				settings.Seconds = seconds
			}

			c, err := pan.ParseCurve(settings.Curve)
			if err != nil {
				return err
			}
			if settings.Note < 0 || settings.Note >= notes.Count {
				return fmt.Errorf("%w: %d", notes.ErrNoteRange, settings.Note)
			}

			table, freqs, err := a.auditionTables(tablesDir, c)
			if err != nil {
				return err
			}

			if err := a.ensureOutputDir(); err != nil {
				return err
			}
			path := a.cfg.AuditionPath()
			frames, err := audition.WriteWAV(path, audition.RenderConfig{
				Table:      table,
				Frequency:  freqs[settings.Note],
				SampleRate: settings.SampleRate,
				BitDepth:   settings.BitDepth,
				Seconds:    settings.Seconds,
				Amplitude:  settings.Amplitude,
			})
			if err != nil {
				return err
			}

			a.logger.Info("pan sweep rendered",
				zap.String("path", path),
				zap.String("curve", c.String()),
				zap.Int("note", settings.Note),
				zap.Float64("frequency", freqs[settings.Note]),
				zap.Int("frames", frames))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&tablesDir, "tables", "", "load note and pan tables from this directory")
	flags.StringVar(&curve, "curve", pan.SineScaled.String(), "pan curve: linear, sine, sqrt, sine_scaled, sqrt_scaled")
	flags.IntVar(&note, "note", notes.ReferenceA4, "MIDI note of the tone")
	flags.IntVar(&rate, "rate", 44100, "sample rate in Hz")
	flags.IntVar(&bits, "bits", 16, "bit depth: 16, 24 or 32")
	flags.Float64Var(&seconds, "seconds", 4, "sweep duration in seconds")
	return cmd
}

// auditionTables returns the pan table for c and the note table, either
// loaded from dir or computed when dir is empty.
func (a *app) auditionTables(dir string, c pan.Curve) (*pan.Table, []float64, error) {
	if dir == "" {
		db := pan.NewDatabase(pan.Generate())
		t, err := db.Get(c)
		if err != nil {
			return nil, nil, err
		}
		return t, notes.Generate(a.cfg.Notes.Reference), nil
	}

	db, err := pan.LoadDatabase(dir, a.cfg.Pan.Suffix)
	if err != nil {
		return nil, nil, err
	}
	t, err := db.Get(c)
	if err != nil {
		return nil, nil, err
	}
	freqs, err := notes.LoadFile(filepath.Join(dir, a.cfg.Notes.File))
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("tables loaded", zap.String("dir", dir), zap.Int("pan_tables", db.Len()))
	return t, freqs, nil
}
