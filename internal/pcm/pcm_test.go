package pcm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0, 0},
		{"full scale", 1, 32767},
		{"negative full scale", -1, -32767},
		{"half truncates", 0.5, 16383},
		{"negative half truncates toward zero", -0.5, -16383},
		{"clamp high", 1.5, 32767},
		{"clamp low", -2, -32767},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantize([]float64{tt.in})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestQuantize_Empty(t *testing.T) {
	assert.Empty(t, Quantize(nil))
}

func TestToFloat(t *testing.T) {
	got := ToFloat([]int16{0, 32767, -32767, 16383})
	assert.InDeltaSlice(t, []float64{0, 1, -1, 16383.0 / 32767}, got, 1e-12)
}

func TestToInt(t *testing.T) {
	assert.Equal(t, []int{-5, 0, 7}, ToInt([]int16{-5, 0, 7}))
}
