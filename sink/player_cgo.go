//go:build (linux && cgo) || windows || darwin

package sink

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// PlaybackAvailable reports whether this build can play audio.
const PlaybackAvailable = true

const resampleQuality = 4

// Player plays samples through the default audio device and blocks until
// playback finishes or ctx is done.
type Player struct {
	mu          sync.Mutex
	initialized bool
	deviceRate  beep.SampleRate
}

// NewPlayer creates a player. The audio device is opened on first use.
func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) init(rate beep.SampleRate) error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	p.deviceRate = rate
	return nil
}

// Consume plays samples.
func (p *Player) Consume(ctx context.Context, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}
	if err := checkRate(sampleRate); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rate := beep.SampleRate(sampleRate)
	if err := p.init(rate); err != nil {
		return err
	}

	var stream beep.Streamer = newPCMStreamer(samples)
	if rate != p.deviceRate {
		stream = beep.Resample(resampleQuality, rate, p.deviceRate, stream)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
