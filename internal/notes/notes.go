// Package notes computes equal-tempered note frequency tables indexed by
// MIDI note number.
package notes

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/anthem-audio/anthem-tools/internal/tablefmt"
)

var (
	// ErrShortTable is returned when a note table holds fewer than Count values.
	ErrShortTable = errors.New("notes: table has fewer than 128 values")

	// ErrInvalidValue is returned when a loaded table contains NaN.
	ErrInvalidValue = errors.New("notes: table contains NaN")

	// ErrNoteRange is returned for note numbers outside [0, Count).
	ErrNoteRange = errors.New("notes: note number out of range")
)

// Frequency returns the frequency in Hz of note relative to ref, where ref
// sounds at ReferenceFrequency. The exponent is computed in floating point so
// notes less than an octave below ref do not collapse onto the same value.
func Frequency(note, ref int) float64 {
	exp := float64(note-ref) / semitonesPerOctave
	return math.Pow(2, exp) * ReferenceFrequency
}

// Generate returns the frequencies of notes 0 through Count-1 relative to ref.
func Generate(ref int) []float64 {
	table := make([]float64, Count)
	for n := range table {
		table[n] = Frequency(n, ref)
	}
	return table
}

// Write writes table one value per line.
func Write(w io.Writer, table []float64) error {
	return tablefmt.WriteColumns(w, table)
}

// WriteFile generates the table for ref and writes it to path, replacing any
// existing file.
func WriteFile(path string, ref int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create note table: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close note table: %w", cerr)
		}
	}()

	if err := Write(f, Generate(ref)); err != nil {
		return fmt.Errorf("failed to write note table: %w", err)
	}
	return nil
}

// Load reads a note table of Count values from r.
func Load(r io.Reader) ([]float64, error) {
	table, err := tablefmt.ReadFloats(r, Count)
	if err != nil {
		if errors.Is(err, tablefmt.ErrShortInput) {
			return nil, fmt.Errorf("%w: %w", ErrShortTable, err)
		}
		return nil, err
	}
	if floats.HasNaN(table) {
		return nil, ErrInvalidValue
	}
	return table, nil
}

// LoadFile reads a note table from path.
func LoadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open note table: %w", err)
	}
	defer func() { _ = f.Close() }()

	table, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Name returns the pitch name of note in scientific notation, e.g. "A4" for 69.
func Name(note int) (string, error) {
	if note < 0 || note >= Count {
		return "", fmt.Errorf("%w: %d", ErrNoteRange, note)
	}
	n := midi.Note(uint8(note))
	octave := note/semitonesPerOctave - octaveOffset
	return n.Name() + strconv.Itoa(octave), nil
}
