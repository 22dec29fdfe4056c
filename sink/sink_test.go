package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulti_RunsAllAndJoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	var calls []string

	record := func(name string, err error) Sink {
		return Func(func(_ context.Context, samples []int16, rate int) error {
			calls = append(calls, name)
			assert.Equal(t, []int16{1, 2, 3}, samples)
			assert.Equal(t, 44100, rate)
			return err
		})
	}

	err := Multi(record("a", errA), record("b", nil), record("c", errC)).
		Consume(context.Background(), []int16{1, 2, 3}, 44100)

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestMulti_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Multi(Func(func(context.Context, []int16, int) error {
		called = true
		return nil
	})).Consume(ctx, []int16{1}, 44100)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSinks_EmptyBufferIsNoop(t *testing.T) {
	dir := t.TempDir()
	exporter := &WAVExporter{Dir: dir}

	sinks := []Sink{exporter, NewPlotter(nil), NewPlayer()}
	for _, s := range sinks {
		assert.NoError(t, s.Consume(context.Background(), nil, 44100))
	}
	assert.Empty(t, exporter.LastPath())
}

func TestPlayer_Unavailable(t *testing.T) {
	if PlaybackAvailable {
		t.Skip("playback available in this build")
	}
	err := NewPlayer().Consume(context.Background(), []int16{1}, 44100)
	assert.ErrorIs(t, err, ErrPlaybackUnavailable)
}
