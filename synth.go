package morse

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/avorio-dev/go-morse/internal/pcm"
	"github.com/avorio-dev/go-morse/internal/simdops"
)

// ErrInvalidConfig is returned by NewSynthesizer for unusable parameters.
var ErrInvalidConfig = errors.New("invalid synthesizer config")

// Timing holds the Morse unit duration. Dash and pause lengths are fixed
// multiples of Dot and cannot be set independently.
type Timing struct {
	Dot time.Duration
}

// Dash returns the dash duration (3 dots).
func (t Timing) Dash() time.Duration {
	return dashUnits * t.Dot
}

// Pause returns the word gap duration (7 dots).
func (t Timing) Pause() time.Duration {
	return pauseUnits * t.Dot
}

// Config holds synthesis parameters.
type Config struct {
	// SampleRate is the output sample rate in Hz.
	SampleRate int

	// Frequency is the tone frequency in Hz. Must be below Nyquist.
	Frequency float64

	// Amplitude is the peak tone amplitude in (0, 1].
	Amplitude float64

	// Timing holds the dot duration.
	Timing Timing
}

// DefaultConfig returns 800 Hz tones at amplitude 0.5, 44.1 kHz, 100 ms dots.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Frequency:  DefaultFrequency,
		Amplitude:  DefaultAmplitude,
		Timing:     Timing{Dot: DefaultDot},
	}
}

// Validate reports whether the config can be synthesized.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Frequency <= 0 || math.IsNaN(c.Frequency) {
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidConfig, c.Frequency)
	}
	if c.Frequency >= float64(c.SampleRate)/nyquistRatio {
		return fmt.Errorf("%w: frequency %g Hz is not below Nyquist (%d Hz)",
			ErrInvalidConfig, c.Frequency, c.SampleRate/nyquistRatio)
	}
	if !(c.Amplitude > 0 && c.Amplitude <= 1) {
		return fmt.Errorf("%w: amplitude must be in (0, 1], got %g", ErrInvalidConfig, c.Amplitude)
	}
	if c.Timing.Dot <= 0 {
		return fmt.Errorf("%w: dot duration must be positive, got %v", ErrInvalidConfig, c.Timing.Dot)
	}
	if c.samples(c.Timing.Dot) == 0 {
		return fmt.Errorf("%w: dot duration %v is shorter than one sample", ErrInvalidConfig, c.Timing.Dot)
	}
	return nil
}

// samples returns the number of samples covering d, rounded down.
func (c Config) samples(d time.Duration) int {
	return int(int64(c.SampleRate) * int64(d) / int64(time.Second))
}

type segmentKind int

const (
	kindSilence segmentKind = iota
	kindTone
)

// segment is the body of one token, before its trailing dot gap.
type segment struct {
	kind segmentKind
	n    int
}

// Synthesizer renders token streams as sine-tone PCM. It is immutable and
// safe for concurrent use.
type Synthesizer struct {
	cfg Config

	dotN   int
	dashN  int
	pauseN int

	// Precomputed tone bodies; copied into output buffers, never mutated.
	dotTone  []float64
	dashTone []float64
}

// NewSynthesizer validates cfg and precomputes tone segments.
func NewSynthesizer(cfg Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Synthesizer{
		cfg:    cfg,
		dotN:   cfg.samples(cfg.Timing.Dot),
		dashN:  cfg.samples(cfg.Timing.Dash()),
		pauseN: cfg.samples(cfg.Timing.Pause()),
	}
	s.dotTone = s.tone(s.dotN)
	s.dashTone = s.tone(s.dashN)

	return s, nil
}

// Config returns the synthesis parameters.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// tone generates n samples of A·sin(2π·f·i/rate), i in [0, n).
func (s *Synthesizer) tone(n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * s.cfg.Frequency / float64(s.cfg.SampleRate)
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	simdops.Float64Ops().Scale(out, out, s.cfg.Amplitude)
	return out
}

// segmentFor maps a token to its body. ok is false for unrecognized tokens.
func (s *Synthesizer) segmentFor(token rune) (seg segment, ok bool) {
	switch token {
	case Dot:
		return segment{kind: kindTone, n: s.dotN}, true
	case Dash:
		return segment{kind: kindTone, n: s.dashN}, true
	case LetterGap:
		return segment{kind: kindSilence, n: s.dashN}, true
	case WordGap:
		return segment{kind: kindSilence, n: s.pauseN}, true
	default:
		return segment{}, false
	}
}

// SampleCount returns the exact length of Synthesize(stream).
func (s *Synthesizer) SampleCount(stream string) int {
	total := 2 * s.dashN
	for _, token := range stream {
		if seg, ok := s.segmentFor(token); ok {
			total += seg.n
		}
		total += s.dotN
	}
	return total
}

// Duration returns the playing time of Synthesize(stream).
func (s *Synthesizer) Duration(stream string) time.Duration {
	n := int64(s.SampleCount(stream))
	return time.Duration(n * int64(time.Second) / int64(s.cfg.SampleRate))
}

// Synthesize renders stream as floating-point samples in [-Amplitude, Amplitude].
//
// The buffer opens and closes with a dash of silence. Each token contributes
// its body followed by one dot of silence; unrecognized tokens contribute only
// the trailing dot of silence.
func (s *Synthesizer) Synthesize(stream string) []float64 {
	buf := make([]float64, 0, s.SampleCount(stream))

	buf = appendSilence(buf, s.dashN)
	for _, token := range stream {
		if seg, ok := s.segmentFor(token); ok {
			switch seg.kind {
			case kindTone:
				buf = append(buf, s.toneFor(seg.n)...)
			case kindSilence:
				buf = appendSilence(buf, seg.n)
			}
		}
		buf = appendSilence(buf, s.dotN)
	}
	buf = appendSilence(buf, s.dashN)

	return buf
}

func (s *Synthesizer) toneFor(n int) []float64 {
	if n == s.dotN {
		return s.dotTone
	}
	return s.dashTone
}

// SynthesizeInt16 renders stream and quantizes the result once.
func (s *Synthesizer) SynthesizeInt16(stream string) []int16 {
	return Quantize(s.Synthesize(stream))
}

// Quantize converts samples to signed 16-bit PCM by scaling by 32767 and
// truncating toward zero. Out-of-range values are clamped.
func Quantize(samples []float64) []int16 {
	return pcm.Quantize(samples)
}

func appendSilence(buf []float64, n int) []float64 {
	start := len(buf)
	buf = slices.Grow(buf, n)[:start+n]
	clear(buf[start:])
	return buf
}
