package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCMStreamer(t *testing.T) {
	s := newPCMStreamer([]int16{32767, -32767, 0})
	require.Equal(t, 3, s.Len())

	buf := make([][2]float64, 2)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 1.0, buf[0][0], 1e-12)
	assert.InDelta(t, 1.0, buf[0][1], 1e-12)
	assert.InDelta(t, -1.0, buf[1][0], 1e-12)

	n, ok = s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = s.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.NoError(t, s.Err())

	require.NoError(t, s.Seek(1))
	assert.Equal(t, 1, s.Position())
	require.NoError(t, s.Seek(99))
	assert.Equal(t, 3, s.Position())
}
