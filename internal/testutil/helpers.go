// Package testutil provides reusable test helper functions for waveform tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avorio-dev/go-morse"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	PeakTolerance    = 10
)

// Alphabet returns a small injected alphabet so tests do not depend on the
// embedded resource.
func Alphabet(t testing.TB) *morse.Alphabet {
	t.Helper()
	a, err := morse.NewAlphabet(morse.Groups{
		Letters: map[rune]string{
			'A': ".-", 'E': ".", 'O': "---", 'S': "...", 'T': "-",
		},
		Digits: map[rune]string{
			'1': ".----", '5': ".....",
		},
		Punctuation: map[rune]string{
			'?': "..--..",
		},
	})
	require.NoError(t, err)
	return a
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertInt16InRange verifies that all quantized samples are within [min, max].
func AssertInt16InRange(t *testing.T, s []int16, minVal, maxVal int16) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "sample out of range",
				"s[%d]=%d is outside range [%d, %d]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertSilent verifies that s[start:end] is all zeros.
func AssertSilent(t *testing.T, s []float64, start, end int) bool {
	t.Helper()
	if !assert.LessOrEqual(t, end, len(s), "silence window exceeds buffer") {
		return false
	}
	for i := start; i < end; i++ {
		if s[i] != 0 {
			return assert.Fail(t, "expected silence", "s[%d]=%f in window [%d, %d)", i, s[i], start, end)
		}
	}
	return true
}

// AssertSounding verifies that s[start:end] contains non-zero samples.
func AssertSounding(t *testing.T, s []float64, start, end int) bool {
	t.Helper()
	if !assert.LessOrEqual(t, end, len(s), "tone window exceeds buffer") {
		return false
	}
	for i := start; i < end; i++ {
		if s[i] != 0 {
			return true
		}
	}
	return assert.Fail(t, "expected tone", "window [%d, %d) is silent", start, end)
}

// PeakInt16 returns the largest absolute sample value.
func PeakInt16(s []int16) int {
	peak := 0
	for _, v := range s {
		a := int(v)
		if a < 0 {
			a = -a
		}
		peak = max(peak, a)
	}
	return peak
}
