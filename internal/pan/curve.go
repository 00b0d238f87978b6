package pan

import (
	"errors"
	"fmt"
)

// Curve identifies one of the pan laws.
type Curve int

// Pan laws, in the order their tables are generated and listed in a manifest.
const (
	Linear Curve = iota
	Sine
	Sqrt
	SineScaled
	SqrtScaled
)

// ErrUnknownCurve is returned by ParseCurve for names that match no curve.
var ErrUnknownCurve = errors.New("pan: unknown curve")

var curveNames = [...]string{
	Linear:     "linear",
	Sine:       "sine",
	Sqrt:       "sqrt",
	SineScaled: "sine_scaled",
	SqrtScaled: "sqrt_scaled",
}

// Curves returns all pan laws in generation order.
func Curves() []Curve {
	return []Curve{Linear, Sine, Sqrt, SineScaled, SqrtScaled}
}

// String returns the curve's name, which is also its table file stem.
func (c Curve) String() string {
	if c < 0 || int(c) >= len(curveNames) {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// Scaled reports whether the curve carries the equal-power normalization.
func (c Curve) Scaled() bool {
	return c == SineScaled || c == SqrtScaled
}

// ParseCurve returns the curve with the given name.
func ParseCurve(name string) (Curve, error) {
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}
