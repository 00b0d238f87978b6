package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	anthemtab "github.com/anthem-audio/anthem-tools"
	"github.com/anthem-audio/anthem-tools/internal/notes"
	"github.com/anthem-audio/anthem-tools/internal/pan"
	"github.com/anthem-audio/anthem-tools/internal/tablefmt"
)

func (a *app) generateCmd() *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the note table, the pan tables and the pan manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			legacy = legacy || a.cfg.Notes.Reference == notes.ReferenceLegacy
			if !legacy && a.cfg.Notes.Reference != notes.ReferenceA4 {
				return fmt.Errorf("generate supports references %d and %d; use the notes command for %d",
					notes.ReferenceA4, notes.ReferenceLegacy, a.cfg.Notes.Reference)
			}

			out, err := anthemtab.Generate(&anthemtab.Options{
				Dir:       a.cfg.OutputDir,
				Legacy:    legacy,
				NotesFile: a.cfg.Notes.File,
				PanSuffix: a.cfg.Pan.Suffix,
			})
			if err != nil {
				return err
			}

			a.logger.Info("tables written",
				zap.String("notes", out.NotesPath),
				zap.Strings("pan", out.PanPaths),
				zap.String("manifest", out.ManifestPath))
			fmt.Fprintln(cmd.OutOrStdout(), out.NotesPath)
			for _, p := range out.PanPaths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.ManifestPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "place 440 Hz at index 48 instead of 69")
	return cmd
}

func (a *app) notesCmd() *cobra.Command {
	var (
		legacy    bool
		reference int
		list      bool
	)
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Write the 128-entry note frequency table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := a.cfg.Notes.Reference
			switch {
			case cmd.Flags().Changed("reference"):
				ref = reference
			case legacy:
				ref = notes.ReferenceLegacy
			}

			if list {
				return listNotes(cmd, ref)
			}

			if err := a.ensureOutputDir(); err != nil {
				return err
			}
			path := a.cfg.NotesPath()
			if err := notes.WriteFile(path, ref); err != nil {
				return err
			}
			a.logger.Info("note table written",
				zap.String("path", path),
				zap.Int("reference", ref),
				zap.Int("rows", notes.Count))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "place 440 Hz at index 48 instead of 69")
	cmd.Flags().IntVar(&reference, "reference", notes.ReferenceA4, "note number sounding at 440 Hz")
	cmd.Flags().BoolVar(&list, "list", false, "print note, name and frequency instead of writing the table")
	return cmd
}

func listNotes(cmd *cobra.Command, ref int) error {
	w := cmd.OutOrStdout()
	for n, f := range notes.Generate(ref) {
		name, err := notes.Name(n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%3d %-4s %s\n", n, name, tablefmt.FormatFloat(f)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) pantablesCmd() *cobra.Command {
	var suffix string
	cmd := &cobra.Command{
		Use:   "pantables",
		Short: "Write the five pan-law tables and their manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("suffix") {
				suffix = a.cfg.Pan.Suffix
			}
			if err := a.ensureOutputDir(); err != nil {
				return err
			}

			paths, err := pan.WriteFiles(a.cfg.OutputDir, suffix, pan.Generate())
			if err != nil {
				return err
			}
			for _, p := range paths {
				a.logger.Debug("pan table written", zap.String("path", p), zap.Int("rows", pan.Positions))
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			manifest := filepath.Join(a.cfg.OutputDir, pan.ManifestName)
			a.logger.Info("pan tables written", zap.Int("tables", len(paths)), zap.String("manifest", manifest))
			fmt.Fprintln(cmd.OutOrStdout(), manifest)
			return nil
		},
	}
	cmd.Flags().StringVar(&suffix, "suffix", pan.DefaultSuffix, "table file suffix")
	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [dir]",
		Short: "Load tables from a directory and summarize them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.OutputDir
			if len(args) == 1 {
				dir = args[0]
			}
			w := cmd.OutOrStdout()

			freqs, err := notes.LoadFile(filepath.Join(dir, a.cfg.Notes.File))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "notes: %d entries, %s Hz .. %s Hz\n",
				len(freqs), tablefmt.FormatFloat(freqs[0]), tablefmt.FormatFloat(freqs[len(freqs)-1]))

			db, err := pan.LoadDatabase(dir, a.cfg.Pan.Suffix)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "pan: %d tables\n", db.Len())
			for _, t := range db.Tables() {
				s := t.Summarize()
				fmt.Fprintf(w, "  %-12s rows=%d center=%.4f/%.4f (%.2f dB) sum=[%.4f, %.4f] power=%.4f\n",
					t.Name(), s.Rows, s.Center.Left, s.Center.Right, s.CenterDB.Left, s.SumMin, s.SumMax, s.Power)
			}
			a.logger.Debug("tables inspected", zap.String("dir", dir), zap.Int("pan_tables", db.Len()))
			return nil
		},
	}
	return cmd
}
