package stylesheet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Embedded(t *testing.T) {
	s := Default()
	require.NotEmpty(t, s)
	assert.True(t, strings.HasPrefix(s, "\n$black: #27272B"))
	assert.Contains(t, s, "#VolumeUi")
	assert.Len(t, Selectors(s), 27)
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		expected rune
	}{
		{"Letter selector", "QLabel\n    color: $white", 'Q'},
		{"Id selector uses second rune", "#VolumeUi\n    border: 2px", 'V'},
		{"Variable uses second rune", "\n$black: #27272B", 'b'},
		{"Lowercase letter", "menu\n  x: y", 'm'},
		{"Leading whitespace ignored", "   \n\t AnthemUi", 'A'},
		{"Multi-rune symbol prefix keys on second rune", "##Double", '#'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := SortKey(tt.block)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestSortKey_Errors(t *testing.T) {
	_, err := SortKey("  \n\t ")
	require.ErrorIs(t, err, ErrEmptyBlock)

	_, err = SortKey("# comment")
	require.ErrorIs(t, err, ErrUnkeyableBlock)
}

func TestSort_Simple(t *testing.T) {
	in := "QLabel\n  a: b\n\n#Alpha\n  c: d\n\nBeta\n  e: f"
	got, err := Sort(in)
	require.NoError(t, err)
	assert.Equal(t, "#Alpha\n  c: d\n\nBeta\n  e: f\n\nQLabel\n  a: b", got)
}

// TestSort_Stable checks that blocks with equal keys keep their input order.
func TestSort_Stable(t *testing.T) {
	in := "Mb\n\n#Ma\n\nAz\n\nMc"
	got, err := Sort(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Az", "Mb", "#Ma", "Mc"}, Selectors(got))
}

// TestSort_UppercaseFirst checks code point ordering of keys.
func TestSort_UppercaseFirst(t *testing.T) {
	got, err := Sort("alpha\n\nZulu\n\n$beta")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zulu", "alpha", "$beta"}, Selectors(got))
}

func TestSort_Default(t *testing.T) {
	got, err := Sort(Default())
	require.NoError(t, err)

	want := []string{
		"AnthemUi", "AlgorithmUi", "CustomComboBox", "CustomMessageBox", "IconButton",
		"Menubar", "#MenuButton", "ModDial", "ModItemUi", "MasterPage",
		"OperatorPage", "OperatorUi,", "#ProjectLabel", "#PreviousButton,", "#PreviousButton",
		"PopupLine", "QLabel", "QPushButton", "QMenu", "QDialog",
		"QLineEdit", "QComboBox", "QTabWidget", "SettingsDialog", "#VolumeUi",
		"$black:", "$windowWidth:",
	}
	if diff := cmp.Diff(want, Selectors(got)); diff != "" {
		t.Errorf("sorted selectors mismatch (-want +got):\n%s", diff)
	}
}

// TestSort_PreservesBlocks checks that sorting only reorders blocks.
func TestSort_PreservesBlocks(t *testing.T) {
	got, err := Sort(Default())
	require.NoError(t, err)
	assert.ElementsMatch(t, Selectors(Default()), Selectors(got))
	assert.Len(t, got, len(Default()))

	blob := "QLabel\n  a: b\n\n#Id\n  c: d\n\nAlpha\n  e: f"
	got, err = Sort(blob)
	require.NoError(t, err)
	assert.ElementsMatch(t, strings.Split(blob, BlockSeparator), strings.Split(got, BlockSeparator))
}

func TestSort_EmptyBlock(t *testing.T) {
	_, err := Sort("A\n\n\n\nB")
	require.ErrorIs(t, err, ErrEmptyBlock)
	assert.Contains(t, err.Error(), "block 1")
}
