// Package analysis computes summary statistics of synthesized waveforms.
package analysis

import (
	"math"
	"math/bits"
	"math/cmplx"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/avorio-dev/go-morse/internal/simdops"
)

// maxFFTSize bounds the analysis window for DominantFrequency.
const maxFFTSize = 1 << 16

// Stats summarizes a waveform.
type Stats struct {
	Samples    int
	SampleRate int
	Duration   time.Duration
	Peak       float64
	RMS        float64
	DominantHz float64
}

// Analyze computes Stats for samples at sampleRate.
func Analyze(samples []float64, sampleRate int) Stats {
	st := Stats{
		Samples:    len(samples),
		SampleRate: sampleRate,
		Peak:       Peak(samples),
		RMS:        RMS(samples),
		DominantHz: DominantFrequency(samples, sampleRate),
	}
	if sampleRate > 0 {
		st.Duration = time.Duration(int64(len(samples)) * int64(time.Second) / int64(sampleRate))
	}
	return st
}

// Peak returns the largest absolute sample value, or 0 for an empty slice.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Max(floats.Max(samples), -floats.Min(samples))
}

// RMS returns the root mean square of samples.
func RMS(samples []float64) float64 {
	return math.Sqrt(simdops.MeanSquare(samples))
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC FFT
// bin. Only the leading power-of-two window (at most 65536 samples) is
// analyzed. It returns 0 for fewer than two samples or pure silence.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}
	n := 1 << (bits.Len(uint(min(len(samples), maxFFTSize))) - 1)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples[:n])

	best, bestMag := 0, 0.0
	for k := 1; k < len(coeffs); k++ {
		if mag := cmplx.Abs(coeffs[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	if best == 0 {
		return 0
	}
	return float64(best) * float64(sampleRate) / float64(n)
}

// Envelope reduces samples to width columns, returning the minimum and
// maximum of each column. Columns are as even as integer division allows.
func Envelope(samples []float64, width int) (lo, hi []float64) {
	if len(samples) == 0 || width <= 0 {
		return nil, nil
	}
	width = min(width, len(samples))
	lo = make([]float64, width)
	hi = make([]float64, width)
	for col := range width {
		start := col * len(samples) / width
		end := (col + 1) * len(samples) / width
		bucket := samples[start:end]
		lo[col] = floats.Min(bucket)
		hi[col] = floats.Max(bucket)
	}
	return lo, hi
}
