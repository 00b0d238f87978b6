package tablefmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrColumnLength is returned when columns passed to WriteColumns differ in length.
	ErrColumnLength = errors.New("tablefmt: columns have different lengths")

	// ErrShortInput is returned when fewer values than requested could be read.
	ErrShortInput = errors.New("tablefmt: not enough values")
)

// WriteColumns writes the given columns row by row. Every row is terminated by
// a newline, including the last one.
func WriteColumns(w io.Writer, cols ...[]float64) error {
	if len(cols) == 0 {
		return nil
	}
	rows := len(cols[0])
	for i, c := range cols[1:] {
		if len(c) != rows {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrColumnLength, i+1, len(c), rows)
		}
	}

	bw := bufio.NewWriterSize(w, writeBufferSize)
	for r := range rows {
		for c, col := range cols {
			if c > 0 {
				if _, err := bw.WriteString(columnSeparator); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(FormatFloat(col[r])); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(rowTerminator); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFloats reads exactly n whitespace-separated values from r. Anything
// after the n-th value is ignored.
func ReadFloats(r io.Reader, n int) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	out := make([]float64, 0, n)
	for len(out) < n && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	if len(out) < n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortInput, len(out), n)
	}
	return out, nil
}
