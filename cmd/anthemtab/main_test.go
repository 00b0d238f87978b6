package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthem-audio/anthem-tools/internal/pan"
	"github.com/anthem-audio/anthem-tools/internal/stylesheet"
)

// execute runs the root command with a missing config file, so defaults apply.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "generate", "-o", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, filepath.Join(dir, "notes.table"), lines[0])
	assert.Equal(t, filepath.Join(dir, "pantables.md"), lines[6])
	for _, p := range lines {
		assert.FileExists(t, p)
	}
}

func TestGenerateCmd_UnsupportedReference(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "anthemtab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("notes:\n  reference: 60\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "generate", "-o", dir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use the notes command")
}

func TestNotesCmd_Legacy(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "notes", "--legacy", "-o", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "notes.table"))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Equal(t, "27.5", lines[0])
	assert.Equal(t, "440.0", lines[48])
}

func TestNotesCmd_List(t *testing.T) {
	out, err := execute(t, "", "notes", "--list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 128)
	assert.Equal(t, " 69 A4   440.0", lines[69])
	assert.Equal(t, " 81 A5   880.0", lines[81])
}

func TestNotesCmd_Reference(t *testing.T) {
	out, err := execute(t, "", "notes", "--list", "--reference", "57")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, " 57 A3   440.0", lines[57])
}

func TestPantablesCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "pantables", "-o", dir, "--suffix", ".tbl")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "sine_scaled.tbl"))

	db, err := pan.LoadDatabase(dir, ".tbl")
	require.NoError(t, err)
	assert.Equal(t, 5, db.Len())
}

func TestInspectCmd(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "generate", "-o", dir)
	require.NoError(t, err)

	out, err := execute(t, "", "inspect", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "notes: 128 entries")
	assert.Contains(t, out, "pan: 5 tables")
	assert.Contains(t, out, "linear       rows=201 center=0.5000/0.5000 (-6.02 dB) sum=[1.0000, 1.0000] power=0.6683")
	assert.Contains(t, out, "sine_scaled")
}

func TestInspectCmd_MissingTables(t *testing.T) {
	_, err := execute(t, "", "inspect", t.TempDir())
	require.Error(t, err)
}

func TestAuditionCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "audition", "-o", dir, "--curve", "sqrt", "--rate", "8000", "--seconds", "0.25")
	require.NoError(t, err)

	path := filepath.Join(dir, "pan_sweep.wav")
	assert.Equal(t, path, strings.TrimSpace(out))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(2000*2*2))
}

func TestAuditionCmd_FromTables(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "generate", "-o", dir)
	require.NoError(t, err)

	_, err = execute(t, "", "audition", "-o", dir, "--tables", dir, "--rate", "8000", "--seconds", "0.1", "--note", "60")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "pan_sweep.wav"))
}

func TestAuditionCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "audition", "-o", t.TempDir(), "--curve", "cosine")
	require.ErrorIs(t, err, pan.ErrUnknownCurve)

	_, err = execute(t, "", "audition", "-o", t.TempDir(), "--note", "128")
	require.Error(t, err)

	_, err = execute(t, "", "audition", "-o", t.TempDir(), "--bits", "8", "--seconds", "0.1")
	require.Error(t, err)
}

func TestStarsCmd_Prompt(t *testing.T) {
	out, err := execute(t, "hello\n", "stars")
	require.NoError(t, err)
	assert.Equal(t, "Input: ***************/\n", out)
}

func TestStarsCmd_PromptWithoutNewline(t *testing.T) {
	out, err := execute(t, "hi", "stars")
	require.NoError(t, err)
	assert.Equal(t, "Input: ************/\n", out)
}

func TestStarsCmd_EmptyInput(t *testing.T) {
	_, err := execute(t, "", "stars")
	require.Error(t, err)
}

func TestStarsCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc"), 0o644))

	out, err := execute(t, "", "stars", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "a**********\n* b\n***********/\n", out)
}

func TestStarsCmd_Find(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Source.cpp")
	require.NoError(t, os.WriteFile(path, []byte("  /*! A\n  x\n  */\nint a;"), 0o644))

	out, err := execute(t, "", "stars", "--find", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "/*! A**********\n* x\n***************/\nint a;\n", out)
}

func TestStylesortCmd(t *testing.T) {
	out, err := execute(t, "", "stylesort")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AnthemUi\n"), "got %q", out[:min(40, len(out))])
	selectors := stylesheet.Selectors(out)
	require.NotEmpty(t, selectors)
	assert.Equal(t, "$windowWidth:", selectors[len(selectors)-1])
	assert.Less(t, strings.Index(out, "\n\n#VolumeUi"), strings.Index(out, "\n\n$black:"))
}

func TestStylesortCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.txt")
	require.NoError(t, os.WriteFile(path, []byte("Zeta\n  a: b\n\n#Alpha\n  c: d"), 0o644))

	out, err := execute(t, "", "stylesort", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "#Alpha\n  c: d\n\nZeta\n  a: b\n", out)
}

func TestVerboseFlag(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "-v", "pantables", "-o", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, pan.ManifestName))
}
