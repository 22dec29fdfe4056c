package morse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avorio-dev/go-morse"
	"github.com/avorio-dev/go-morse/internal/testutil"
	"github.com/avorio-dev/go-morse/sink"
)

func TestRender(t *testing.T) {
	pcm, err := morse.Render("E")
	require.NoError(t, err)
	// lead, dot, gap, trail
	assert.Len(t, pcm, 13230+4410+4410+13230)
}

func TestNewPipeline_Errors(t *testing.T) {
	_, err := morse.NewPipeline(nil, morse.DefaultConfig())
	require.ErrorIs(t, err, morse.ErrInvalidAlphabet)

	cfg := morse.DefaultConfig()
	cfg.SampleRate = -1
	_, err = morse.NewPipeline(testutil.Alphabet(t), cfg)
	require.ErrorIs(t, err, morse.ErrInvalidConfig)
}

func TestPipeline_Process(t *testing.T) {
	p, err := morse.NewPipeline(testutil.Alphabet(t), morse.DefaultConfig())
	require.NoError(t, err)

	var got []int16
	var gotRate int
	capture := sink.Func(func(_ context.Context, samples []int16, rate int) error {
		got, gotRate = samples, rate
		return nil
	})
	failing := sink.Func(func(context.Context, []int16, int) error {
		return errors.New("disk full")
	})

	res, err := p.Process(context.Background(), " sos ", capture, failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	require.NotNil(t, res)
	assert.Equal(t, "SOS", res.Text)
	assert.Equal(t, "... --- ...", res.Stream)
	assert.Equal(t, 44100, res.SampleRate)
	assert.Equal(t, res.Samples, got)
	assert.Equal(t, 44100, gotRate)
	assert.Equal(t, p.Synthesizer().SampleCount(res.Stream), len(res.Samples))
}

func TestPipeline_RenderStream(t *testing.T) {
	p, err := morse.NewPipeline(testutil.Alphabet(t), morse.DefaultConfig())
	require.NoError(t, err)

	res := p.RenderStream("", "|")
	assert.Len(t, res.Samples, 14*4410)
	assert.Equal(t, "SOS", p.Codec().Decode("... --- ..."))
}

func TestDeliver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := morse.Deliver(ctx, &morse.Result{Samples: []int16{1}, SampleRate: 44100},
		sink.Func(func(context.Context, []int16, int) error {
			called = true
			return nil
		}))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
