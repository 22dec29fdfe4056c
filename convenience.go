package morse

import (
	"context"
	"errors"
	"fmt"
)

// Sink consumes quantized PCM. Implementations must treat an empty buffer as
// a no-op. See package sink for WAV export, playback and plotting.
type Sink interface {
	Consume(ctx context.Context, samples []int16, sampleRate int) error
}

// Encode converts text to a token stream using the embedded alphabet.
func Encode(text string) string {
	return NewCodec(MustDefaultAlphabet()).Encode(text)
}

// Decode converts a token stream to text using the embedded alphabet.
func Decode(stream string) string {
	return NewCodec(MustDefaultAlphabet()).Decode(stream)
}

// Render encodes text with the embedded alphabet and synthesizes it with
// DefaultConfig.
func Render(text string) ([]int16, error) {
	p, err := NewPipeline(MustDefaultAlphabet(), DefaultConfig())
	if err != nil {
		return nil, err
	}
	return p.Render(text).Samples, nil
}

// Result is the output of a pipeline run.
type Result struct {
	// Text is the normalized input.
	Text string

	// Stream is the encoded token stream.
	Stream string

	// Samples is the quantized waveform.
	Samples []int16

	// SampleRate of Samples in Hz.
	SampleRate int
}

// Pipeline chains encoding, synthesis and quantization.
type Pipeline struct {
	codec *Codec
	synth *Synthesizer
}

// NewPipeline creates a pipeline from an alphabet and synthesis config.
func NewPipeline(alphabet *Alphabet, cfg Config) (*Pipeline, error) {
	if alphabet == nil {
		return nil, fmt.Errorf("%w: nil alphabet", ErrInvalidAlphabet)
	}
	synth, err := NewSynthesizer(cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{codec: NewCodec(alphabet), synth: synth}, nil
}

// Codec returns the pipeline codec.
func (p *Pipeline) Codec() *Codec {
	return p.codec
}

// Synthesizer returns the pipeline synthesizer.
func (p *Pipeline) Synthesizer() *Synthesizer {
	return p.synth
}

// Render encodes and synthesizes text.
func (p *Pipeline) Render(text string) *Result {
	stream := p.codec.Encode(text)
	return p.RenderStream(Normalize(text), stream)
}

// RenderStream synthesizes an already encoded stream. text is carried into
// the result unchanged.
func (p *Pipeline) RenderStream(text, stream string) *Result {
	return &Result{
		Text:       text,
		Stream:     stream,
		Samples:    p.synth.SynthesizeInt16(stream),
		SampleRate: p.synth.cfg.SampleRate,
	}
}

// Process renders text and hands the samples to each sink in order. All sinks
// run even if one fails; their errors are joined.
func (p *Pipeline) Process(ctx context.Context, text string, sinks ...Sink) (*Result, error) {
	res := p.Render(text)
	return res, Deliver(ctx, res, sinks...)
}

// Deliver hands a rendered result to each sink in order and joins their errors.
func Deliver(ctx context.Context, res *Result, sinks ...Sink) error {
	var errs []error
	for _, s := range sinks {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.Consume(ctx, res.Samples, res.SampleRate); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
