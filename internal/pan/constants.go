package pan

import "math"

// Table layout
const (
	// Positions is the number of rows in a pan table, one per integer pan
	// value from -100 (hard left) to +100 (hard right).
	Positions = 201

	// Center is the row index of the center pan position.
	Center = 100

	// MinValue and MaxValue bound the pan value accepted by Lookup.
	MinValue = -100.0
	MaxValue = 100.0

	positionSpan = 200.0 // denominator mapping a row to a gain in [0, 1]
)

// Curve constants
const (
	quarterTurn = math.Pi / 2

	// EqualPowerScale is the -3 dB normalization constant sqrt(2)/2 applied
	// to the scaled curves.
	EqualPowerScale = math.Sqrt2 / 2
)

// File layout
const (
	// DefaultSuffix is appended to a curve name to form its table file name.
	DefaultSuffix = ".table"

	// ManifestName is the file listing the table length and table names.
	ManifestName = "pantables.md"
)
