package sink

import (
	"github.com/gopxl/beep/v2"

	"github.com/avorio-dev/go-morse/internal/pcm"
)

// pcmStreamer streams mono 16-bit samples to both beep channels.
type pcmStreamer struct {
	samples []float64
	pos     int
}

var _ beep.StreamSeeker = (*pcmStreamer)(nil)

func newPCMStreamer(samples []int16) *pcmStreamer {
	return &pcmStreamer{samples: pcm.ToFloat(samples)}
}

func (s *pcmStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.pos < len(s.samples) {
		v := s.samples[s.pos]
		buf[n][0], buf[n][1] = v, v
		n++
		s.pos++
	}
	return n, true
}

func (s *pcmStreamer) Err() error { return nil }

func (s *pcmStreamer) Len() int { return len(s.samples) }

func (s *pcmStreamer) Position() int { return s.pos }

func (s *pcmStreamer) Seek(p int) error {
	s.pos = min(max(p, 0), len(s.samples))
	return nil
}
