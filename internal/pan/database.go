package pan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"github.com/anthem-audio/anthem-tools/internal/tablefmt"
)

var (
	// ErrMissingCurve is returned by Database.Get for curves the database does not hold.
	ErrMissingCurve = errors.New("pan: curve not in database")

	// ErrInvalidValue is returned when a loaded table contains NaN.
	ErrInvalidValue = errors.New("pan: table contains NaN")
)

// Database holds a set of pan tables keyed by curve.
type Database struct {
	tables  []*Table
	byCurve map[Curve]*Table
}

// NewDatabase returns a database over tables. Later tables replace earlier
// ones with the same curve.
func NewDatabase(tables []*Table) *Database {
	d := &Database{
		tables:  tables,
		byCurve: make(map[Curve]*Table, len(tables)),
	}
	for _, t := range tables {
		d.byCurve[t.Curve] = t
	}
	return d
}

// LoadDatabase reads the manifest in dir and every table it lists.
func LoadDatabase(dir, suffix string) (*Database, error) {
	mf, err := os.Open(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	m, err := ReadManifest(mf)
	_ = mf.Close()
	if err != nil {
		return nil, err
	}

	tables := make([]*Table, 0, len(m.Names))
	for _, name := range m.Names {
		t, err := LoadTable(filepath.Join(dir, name+suffix), name, m.Length)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return NewDatabase(tables), nil
}

// LoadTable reads a table of rows (left, right) rows from path. name selects
// the curve.
func LoadTable(path, name string, rows int) (*Table, error) {
	c, err := ParseCurve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s table: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	values, err := tablefmt.ReadFloats(f, rows*2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if floats.HasNaN(values) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidValue)
	}

	t := newTable(c, rows)
	for i := range rows {
		t.Left[i] = values[2*i]
		t.Right[i] = values[2*i+1]
	}
	return t, nil
}

// Get returns the table for curve c.
func (d *Database) Get(c Curve) (*Table, error) {
	t, ok := d.byCurve[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCurve, c)
	}
	return t, nil
}

// Len returns the number of tables.
func (d *Database) Len() int {
	return len(d.tables)
}

// Tables returns the tables in load order.
func (d *Database) Tables() []*Table {
	return d.tables
}
