package tablefmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteColumns_SingleColumn(t *testing.T) {
	var buf bytes.Buffer
	err := WriteColumns(&buf, []float64{27.5, 55, 110})
	require.NoError(t, err)
	assert.Equal(t, "27.5\n55.0\n110.0\n", buf.String())
}

func TestWriteColumns_TwoColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteColumns(&buf, []float64{1, 0.5, 0}, []float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, "1.0 0.0\n0.5 0.5\n0.0 1.0\n", buf.String())
}

func TestWriteColumns_LengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteColumns(&buf, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrColumnLength)
	assert.Empty(t, buf.String())
}

func TestWriteColumns_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteColumns(&buf))
	assert.Empty(t, buf.String())
}

func TestReadFloats(t *testing.T) {
	got, err := ReadFloats(strings.NewReader("1.0 0.0\n0.5 0.5\n0.0 1.0"), 6)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0.5, 0.5, 0, 1}, got)
}

func TestReadFloats_IgnoresTrailing(t *testing.T) {
	got, err := ReadFloats(strings.NewReader("1 2 3 4"), 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
}

func TestReadFloats_Short(t *testing.T) {
	_, err := ReadFloats(strings.NewReader("1.0\n2.0\n"), 3)
	require.ErrorIs(t, err, ErrShortInput)
}

func TestReadFloats_Malformed(t *testing.T) {
	_, err := ReadFloats(strings.NewReader("1.0 abc"), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 1")
}

func TestWriteRead_RoundTrip(t *testing.T) {
	left := []float64{1, 0.995, 0.75, 0.5}
	right := []float64{0, 0.005, 0.25, 0.5}

	var buf bytes.Buffer
	require.NoError(t, WriteColumns(&buf, left, right))

	got, err := ReadFloats(&buf, 8)
	require.NoError(t, err)
	for i := range left {
		assert.Equal(t, left[i], got[2*i])
		assert.Equal(t, right[i], got[2*i+1])
	}
}
