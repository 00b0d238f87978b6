package tablefmt

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected string
	}{
		{"Zero", 0, "0.0"},
		{"Negative zero", math.Copysign(0, -1), "-0.0"},
		{"Whole number", 440, "440.0"},
		{"One", 1, "1.0"},
		{"Half", 0.5, "0.5"},
		{"Tenth", 0.1, "0.1"},
		{"Pan step", 0.005, "0.005"},
		{"Lowest MIDI note", 8.175798915643707, "8.175798915643707"},
		{"Highest MIDI note", 12543.853951415975, "12543.853951415975"},
		{"Negative", -27.5, "-27.5"},
		{"Smallest fixed", 0.0001, "0.0001"},
		{"Largest exponent below", 1e-5, "1e-05"},
		{"Small with mantissa", 1.5e-7, "1.5e-07"},
		{"Largest fixed", 1e15, "1000000000000000.0"},
		{"Smallest exponent above", 1e16, "1e+16"},
		{"Large with mantissa", 2.5e20, "2.5e+20"},
		{"Three digit exponent", 1e-300, "1e-300"},
		{"NaN", math.NaN(), "nan"},
		{"Positive infinity", math.Inf(1), "inf"},
		{"Negative infinity", math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFloat(tt.in))
		})
	}
}

// TestFormatFloat_RoundTrip verifies that formatted values parse back to the same float.
func TestFormatFloat_RoundTrip(t *testing.T) {
	values := []float64{
		math.Pi, math.Sqrt2 / 2, 1.0 / 3.0, 6.123233995736766e-17,
		123456789.125, 9.999999999999999e15, math.MaxFloat64, math.SmallestNonzeroFloat64,
	}
	for _, v := range values {
		s := FormatFloat(v)
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "parse %q", s)
		assert.Equal(t, v, got, "round trip of %q", s)
	}
}
