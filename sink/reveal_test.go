package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", "/tmp/x"}},
		{"darwin", []string{"open", "/tmp/x"}},
		{"windows", []string{"explorer", "/tmp/x"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := revealCommand(tt.goos, "/tmp/x")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := revealCommand("plan9", "/tmp/x")
	assert.Error(t, err)
}
