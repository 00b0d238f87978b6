// Package testutil provides reusable assertions for table generator tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for table comparisons.
const (
	DefaultTolerance = 1e-12 // derived gains and sums
	FreqTolerance    = 1e-9  // absolute, in Hz
	GainTolerance    = 1e-15 // directly generated gains
)

// AssertStrictlyIncreasing verifies that every element is greater than its predecessor.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly increasing: s[%d]=%v <= s[%d]=%v",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertMirrored verifies that a[i] == b[n-1-i] for every i, i.e. b is a read backwards.
func AssertMirrored(t *testing.T, a, b []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, b, len(a), msgAndArgs...) {
		return false
	}
	n := len(a)
	for i := range n {
		j := n - 1 - i
		if !(math.Abs(a[i]-b[j]) <= tolerance) {
			return assert.Fail(t, fmt.Sprintf("not mirrored at i=%d: a[%d]=%v != b[%d]=%v",
				i, i, a[i], j, b[j]), msgAndArgs...)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d]", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d]", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%v is outside [%v, %v]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%v, actual=%v)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}
