//go:build !((linux && cgo) || windows || darwin)

package sink

import "context"

// PlaybackAvailable reports whether this build can play audio.
// Audio requires cgo for native sound libraries on Linux.
const PlaybackAvailable = false

// Player is a stand-in that always reports ErrPlaybackUnavailable.
type Player struct{}

// NewPlayer creates a player.
func NewPlayer() *Player {
	return &Player{}
}

// Consume returns ErrPlaybackUnavailable for non-empty buffers.
func (p *Player) Consume(_ context.Context, samples []int16, _ int) error {
	if len(samples) == 0 {
		return nil
	}
	return ErrPlaybackUnavailable
}
