package pan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidManifest is returned for manifests without a valid length or names.
var ErrInvalidManifest = errors.New("pan: invalid manifest")

// Manifest describes a directory of pan tables: the number of rows in each
// table followed by the table names.
type Manifest struct {
	Length int
	Names  []string
}

// ManifestFor returns the manifest describing tables. The length is taken
// from the first table.
func ManifestFor(tables []*Table) Manifest {
	m := Manifest{Names: make([]string, len(tables))}
	if len(tables) > 0 {
		m.Length = tables[0].Len()
	}
	for i, t := range tables {
		m.Names[i] = t.Name()
	}
	return m
}

// WriteManifest writes the length and then one name per line.
func WriteManifest(w io.Writer, m Manifest) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.Length))
	sb.WriteByte('\n')
	for _, name := range m.Names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteManifestFile writes m to path.
func WriteManifestFile(path string, m Manifest) error {
	var sb strings.Builder
	if err := WriteManifest(&sb, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest parses a manifest. Words may be separated by any whitespace.
func ReadManifest(r io.Reader) (Manifest, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	if len(words) == 0 {
		return Manifest{}, fmt.Errorf("%w: empty", ErrInvalidManifest)
	}

	length, err := strconv.Atoi(words[0])
	if err != nil || length <= 0 {
		return Manifest{}, fmt.Errorf("%w: bad table length %q", ErrInvalidManifest, words[0])
	}
	if len(words) == 1 {
		return Manifest{}, fmt.Errorf("%w: no tables listed", ErrInvalidManifest)
	}
	return Manifest{Length: length, Names: words[1:]}, nil
}
