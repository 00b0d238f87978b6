// Package pan generates and loads pan-law lookup tables. A table maps each
// of Positions pan positions, from hard left to hard right, to a pair of
// left and right channel gains.
package pan

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/anthem-audio/anthem-tools/internal/simdops"
	"github.com/anthem-audio/anthem-tools/internal/tablefmt"
)

var (
	// ErrPanOutOfRange is returned for pan values outside [MinValue, MaxValue].
	ErrPanOutOfRange = errors.New("pan: value out of range")

	// ErrEmptyTable is returned when looking up a value in a table without rows.
	ErrEmptyTable = errors.New("pan: table has no rows")
)

// Pair holds the left and right channel gains for one pan position.
type Pair struct {
	Left  float64
	Right float64
}

// Table is a pan-law lookup table stored as two parallel gain columns.
type Table struct {
	Curve Curve
	Left  []float64
	Right []float64
}

func newTable(c Curve, rows int) *Table {
	return &Table{
		Curve: c,
		Left:  make([]float64, rows),
		Right: make([]float64, rows),
	}
}

// Generate computes the tables of every curve in Curves order.
func Generate() []*Table {
	lin := newTable(Linear, Positions)
	sine := newTable(Sine, Positions)
	sqrt := newTable(Sqrt, Positions)

	for n := range Positions {
		v := float64(n - Center)
		left := (Center - v) / positionSpan
		right := (Center + v) / positionSpan

		lin.Left[n], lin.Right[n] = left, right
		sine.Left[n], sine.Right[n] = math.Sin(left*quarterTurn), math.Sin(right*quarterTurn)
		sqrt.Left[n], sqrt.Right[n] = math.Sqrt(left), math.Sqrt(right)
	}

	return []*Table{lin, sine, sqrt, scaled(SineScaled, sine), scaled(SqrtScaled, sqrt)}
}

// scaled returns a copy of src multiplied by EqualPowerScale.
func scaled(c Curve, src *Table) *Table {
	return &Table{
		Curve: c,
		Left:  simdops.ScaleTo(src.Left, EqualPowerScale),
		Right: simdops.ScaleTo(src.Right, EqualPowerScale),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Left)
}

// At returns row i.
func (t *Table) At(i int) Pair {
	return Pair{Left: t.Left[i], Right: t.Right[i]}
}

// Name returns the table's curve name.
func (t *Table) Name() string {
	return t.Curve.String()
}

// position maps a pan value onto a fractional row index.
func (t *Table) position(value float64) (float64, error) {
	if t.Len() == 0 {
		return 0, ErrEmptyTable
	}
	if !(value >= MinValue && value <= MaxValue) {
		return 0, fmt.Errorf("%w: %v not in [%v, %v]", ErrPanOutOfRange, value, MinValue, MaxValue)
	}
	return (value - MinValue) * float64(t.Len()-1) / (MaxValue - MinValue), nil
}

// Lookup returns the row nearest to the pan value, where MinValue is hard
// left and MaxValue hard right. Values halfway between rows resolve to the
// row on the right.
func (t *Table) Lookup(value float64) (Pair, error) {
	pos, err := t.position(value)
	if err != nil {
		return Pair{}, err
	}
	return t.At(int(math.Round(pos))), nil
}

// Interpolate returns the gains at the pan value, linearly interpolated
// between the two neighbouring rows.
func (t *Table) Interpolate(value float64) (Pair, error) {
	pos, err := t.position(value)
	if err != nil {
		return Pair{}, err
	}
	i := int(pos)
	if i >= t.Len()-1 {
		return t.At(t.Len() - 1), nil
	}
	frac := pos - float64(i)
	a, b := t.At(i), t.At(i+1)
	return Pair{
		Left:  a.Left + (b.Left-a.Left)*frac,
		Right: a.Right + (b.Right-a.Right)*frac,
	}, nil
}

// Write writes the table as "left right" rows.
func (t *Table) Write(w io.Writer) error {
	return tablefmt.WriteColumns(w, t.Left, t.Right)
}

// FileName returns the table's file name for the given suffix.
func (t *Table) FileName(suffix string) string {
	return t.Name() + suffix
}

// WriteFile writes the table to path, replacing any existing file.
func (t *Table) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s table: %w", t.Name(), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s table: %w", t.Name(), cerr)
		}
	}()

	if err := t.Write(f); err != nil {
		return fmt.Errorf("failed to write %s table: %w", t.Name(), err)
	}
	return nil
}

// WriteFiles writes every table into dir as <curve><suffix> together with a
// manifest listing them, and returns the paths of the table files.
func WriteFiles(dir, suffix string, tables []*Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, t.FileName(suffix))
		if err := t.WriteFile(path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if err := WriteManifestFile(filepath.Join(dir, ManifestName), ManifestFor(tables)); err != nil {
		return nil, err
	}
	return paths, nil
}
