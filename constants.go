package morse

import (
	"time"

	"github.com/avorio-dev/go-morse/internal/pcm"
)

// Token stream symbols.
const (
	Dot       = '.'
	Dash      = '-'
	LetterGap = ' '
	WordGap   = '|'
)

// Placeholder is emitted by the decoder for symbols missing from the alphabet.
const Placeholder = '?'

// Synthesis defaults.
const (
	// DefaultSampleRate is the CD quality sample rate used for synthesis.
	DefaultSampleRate = 44100

	// DefaultFrequency is the tone frequency in Hz.
	DefaultFrequency = 800.0

	// DefaultAmplitude is the peak amplitude of tone segments.
	DefaultAmplitude = 0.5

	// DefaultDot is the duration of one dot.
	DefaultDot = 100 * time.Millisecond
)

// Timing multipliers relative to one dot.
const (
	dashUnits  = 3
	pauseUnits = 7
)

// Output PCM format.
const (
	// BitDepth is the bit depth of quantized samples.
	BitDepth = 16

	// MaxSample16 is the largest quantized magnitude.
	MaxSample16 = pcm.MaxInt16
)

const nyquistRatio = 2
