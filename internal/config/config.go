// Package config loads and saves the table generator configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/anthem-audio/anthem-tools/internal/notes"
	"github.com/anthem-audio/anthem-tools/internal/pan"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "anthemtab.yaml"

// Config holds the settings shared by all generators.
type Config struct {
	// OutputDir receives every generated file.
	OutputDir string `yaml:"output_dir"`

	Notes    NotesConfig    `yaml:"notes"`
	Pan      PanConfig      `yaml:"pan"`
	Audition AuditionConfig `yaml:"audition"`
}

// NotesConfig configures the note frequency table.
type NotesConfig struct {
	File      string `yaml:"file"`
	Reference int    `yaml:"reference"`
}

// PanConfig configures the pan tables.
type PanConfig struct {
	Suffix string `yaml:"suffix"`
}

// AuditionConfig configures the pan sweep render.
type AuditionConfig struct {
	File       string  `yaml:"file"`
	Curve      string  `yaml:"curve"`
	Note       int     `yaml:"note"`
	SampleRate int     `yaml:"sample_rate"`
	BitDepth   int     `yaml:"bit_depth"`
	Seconds    float64 `yaml:"seconds"`
	Amplitude  float64 `yaml:"amplitude"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Notes: NotesConfig{
			File:      notes.DefaultFileName,
			Reference: notes.ReferenceA4,
		},
		Pan: PanConfig{
			Suffix: pan.DefaultSuffix,
		},
		Audition: AuditionConfig{
			File:       "pan_sweep.wav",
			Curve:      pan.SineScaled.String(),
			Note:       notes.ReferenceA4,
			SampleRate: 44100,
			BitDepth:   16,
			Seconds:    4,
			Amplitude:  0.8,
		},
	}
}

// Load reads a configuration from path on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks every field for usable values.
func (c *Config) Validate() error {
	var errs []error
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is empty"))
	}
	if c.Notes.File == "" {
		errs = append(errs, errors.New("notes.file is empty"))
	}
	if c.Notes.Reference < 0 || c.Notes.Reference >= notes.Count {
		errs = append(errs, fmt.Errorf("notes.reference %d not in [0, %d)", c.Notes.Reference, notes.Count))
	}
	if _, err := pan.ParseCurve(c.Audition.Curve); err != nil {
		errs = append(errs, fmt.Errorf("audition.curve: %w", err))
	}
	if c.Audition.Note < 0 || c.Audition.Note >= notes.Count {
		errs = append(errs, fmt.Errorf("audition.note %d not in [0, %d)", c.Audition.Note, notes.Count))
	}
	if c.Audition.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audition.sample_rate %d must be positive", c.Audition.SampleRate))
	}
	switch c.Audition.BitDepth {
	case 16, 24, 32:
	default:
		errs = append(errs, fmt.Errorf("audition.bit_depth %d must be 16, 24 or 32", c.Audition.BitDepth))
	}
	if c.Audition.Seconds <= 0 {
		errs = append(errs, fmt.Errorf("audition.seconds %v must be positive", c.Audition.Seconds))
	}
	if c.Audition.Amplitude <= 0 || c.Audition.Amplitude > 1 {
		errs = append(errs, fmt.Errorf("audition.amplitude %v not in (0, 1]", c.Audition.Amplitude))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// NotesPath returns the note table path inside OutputDir.
func (c *Config) NotesPath() string {
	return filepath.Join(c.OutputDir, c.Notes.File)
}

// AuditionPath returns the audition render path inside OutputDir.
func (c *Config) AuditionPath() string {
	return filepath.Join(c.OutputDir, c.Audition.File)
}
