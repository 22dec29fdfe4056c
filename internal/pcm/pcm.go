// Package pcm converts between floating-point samples and signed 16-bit PCM.
package pcm

import (
	"math"

	"github.com/avorio-dev/go-morse/internal/simdops"
)

// MaxInt16 is the full-scale value used for quantization. The range is
// symmetric, so -32768 is never produced.
const MaxInt16 = 32767

// Quantize scales samples by MaxInt16 and truncates toward zero. Values outside
// [-1, 1] are clamped and NaN maps to zero.
func Quantize(samples []float64) []int16 {
	if len(samples) == 0 {
		return []int16{}
	}

	scaled := make([]float64, len(samples))
	simdops.Float64Ops().Scale(scaled, samples, MaxInt16)

	out := make([]int16, len(scaled))
	for i, v := range scaled {
		switch {
		case math.IsNaN(v):
			v = 0
		case v > MaxInt16:
			v = MaxInt16
		case v < -MaxInt16:
			v = -MaxInt16
		}
		out[i] = int16(v)
	}
	return out
}

// ToFloat converts 16-bit samples back to [-1, 1].
func ToFloat(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}
	simdops.Float64Ops().Scale(out, out, 1.0/MaxInt16)
	return out
}

// ToInt widens 16-bit samples for APIs that take []int.
func ToInt(samples []int16) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(s)
	}
	return out
}
