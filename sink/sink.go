// Package sink provides output adapters for quantized Morse audio: WAV export,
// blocking playback and a terminal waveform plot.
//
// Every adapter implements
//
//	Consume(ctx context.Context, samples []int16, sampleRate int) error
//
// and does nothing for an empty buffer. Adapters are independent; callers
// pick any combination and run them with [Multi] or morse.Deliver.
package sink

import (
	"context"
	"errors"
	"fmt"
)

// Errors returned by sinks.
var (
	// ErrPlaybackUnavailable is returned by Player in builds without audio support.
	ErrPlaybackUnavailable = errors.New("audio playback not available in this build")

	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)

// Sink consumes signed 16-bit mono PCM.
type Sink interface {
	Consume(ctx context.Context, samples []int16, sampleRate int) error
}

// Func adapts a function to Sink.
type Func func(ctx context.Context, samples []int16, sampleRate int) error

// Consume calls f.
func (f Func) Consume(ctx context.Context, samples []int16, sampleRate int) error {
	return f(ctx, samples, sampleRate)
}

type multi []Sink

// Multi returns a Sink that runs sinks in order and joins their errors.
// Remaining sinks are skipped once ctx is done.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Consume(ctx context.Context, samples []int16, sampleRate int) error {
	var errs []error
	for _, s := range m {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.Consume(ctx, samples, sampleRate); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkRate(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}
