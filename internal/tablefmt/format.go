// Package tablefmt reads and writes the plain-text lookup table format:
// one row per line, columns separated by a single space, values in
// shortest round-trip decimal notation.
package tablefmt

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f in shortest round-trip notation. Values whose decimal
// exponent lies in (-4, 16] print in fixed notation with at least one
// fractional digit (440 -> "440.0"); everything else prints as d.ddde±XX.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	// Shortest digits and exponent, e.g. "-4.4e+02".
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		// strconv always emits a valid exponent
		return s
	}

	var sb strings.Builder
	if mantissa[0] == '-' {
		sb.WriteByte('-')
		mantissa = mantissa[1:]
	}
	digits := strings.Replace(mantissa, ".", "", 1)

	// decpt is the position of the decimal point relative to the first digit.
	decpt := exp + 1
	if decpt > minFixedDecpt && decpt <= maxFixedDecpt {
		writeFixed(&sb, digits, decpt)
	} else {
		writeExponent(&sb, digits, decpt-1)
	}
	return sb.String()
}

func writeFixed(sb *strings.Builder, digits string, decpt int) {
	switch {
	case decpt <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -decpt))
		sb.WriteString(digits)
	case decpt >= len(digits):
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", decpt-len(digits)))
		sb.WriteString(".0")
	default:
		sb.WriteString(digits[:decpt])
		sb.WriteByte('.')
		sb.WriteString(digits[decpt:])
	}
}

func writeExponent(sb *strings.Builder, digits string, exp int) {
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte('e')
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}
	e := strconv.Itoa(exp)
	if len(e) < minExponentDigits {
		sb.WriteByte('0')
	}
	sb.WriteString(e)
}
