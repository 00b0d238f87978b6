package anthemtab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthem-audio/anthem-tools/internal/notes"
	"github.com/anthem-audio/anthem-tools/internal/pan"
)

// PanCurve selects a pan law.
type PanCurve int

// Pan laws.
const (
	// PanLinear: left = (100-v)/200, right = (100+v)/200.
	PanLinear PanCurve = iota
	// PanSine: sin(gain * pi/2) of the linear gains.
	PanSine
	// PanSqrt: square root of the linear gains.
	PanSqrt
	// PanSineScaled: PanSine multiplied by sqrt(2)/2.
	PanSineScaled
	// PanSqrtScaled: PanSqrt multiplied by sqrt(2)/2.
	PanSqrtScaled
)

// String returns the curve name used for its table file.
func (c PanCurve) String() string {
	return pan.Curve(c).String()
}

// Options controls Generate.
type Options struct {
	// Dir receives the tables. It is created if missing.
	Dir string

	// Legacy selects ReferenceLegacy instead of ReferenceA4.
	Legacy bool

	// NotesFile overrides DefaultNotesFile.
	NotesFile string

	// PanSuffix overrides DefaultPanSuffix.
	PanSuffix string
}

// Output lists the files written by Generate.
type Output struct {
	NotesPath    string
	PanPaths     []string
	ManifestPath string
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.Dir == "" {
		return errors.New("output directory must be set")
	}
	if o.NotesFile == "" {
		o.NotesFile = DefaultNotesFile
	}
	if o.PanSuffix == "" {
		o.PanSuffix = DefaultPanSuffix
	}
	return nil
}

func (o *Options) reference() int {
	if o.Legacy {
		return ReferenceLegacy
	}
	return ReferenceA4
}

// Generate writes the note table, the pan tables and the pan manifest.
func Generate(opts *Options) (*Output, error) {
	if opts == nil {
		return nil, errors.New("options must not be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	out := &Output{
		NotesPath:    filepath.Join(opts.Dir, opts.NotesFile),
		ManifestPath: filepath.Join(opts.Dir, ManifestName),
	}
	if err := notes.WriteFile(out.NotesPath, opts.reference()); err != nil {
		return nil, err
	}

	paths, err := pan.WriteFiles(opts.Dir, opts.PanSuffix, pan.Generate())
	if err != nil {
		return nil, err
	}
	out.PanPaths = paths
	return out, nil
}

// NoteFrequencies returns the 128-entry note table for ref.
func NoteFrequencies(ref int) []float64 {
	return notes.Generate(ref)
}

// PanGains returns the left and right gain columns of curve c.
func PanGains(c PanCurve) (left, right []float64, err error) {
	db := pan.NewDatabase(pan.Generate())
	t, err := db.Get(pan.Curve(c))
	if err != nil {
		return nil, nil, err
	}
	return t.Left, t.Right, nil
}

// PanAt returns the gains of curve c at pan value v in [-100, 100],
// interpolating between table rows.
func PanAt(c PanCurve, v float64) (left, right float64, err error) {
	db := pan.NewDatabase(pan.Generate())
	t, err := db.Get(pan.Curve(c))
	if err != nil {
		return 0, 0, err
	}
	p, err := t.Interpolate(v)
	if err != nil {
		return 0, 0, err
	}
	return p.Left, p.Right, nil
}
