package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	resampling "github.com/tphakala/go-audio-resampler"

	"github.com/avorio-dev/go-morse/internal/pcm"
)

const (
	bitDepth16     = 16
	monoChannels   = 1
	wavFormatPCM   = 1
	exportDirMode  = 0o755
	exportSubdir   = "MorseAudio"
	exportFileStem = "morse_"
)

// WAVExporter writes 16-bit mono PCM WAV files.
type WAVExporter struct {
	// Dir receives the exported files. Defaults to DefaultExportDir().
	Dir string

	// TargetRate resamples before writing when non-zero and different from
	// the input rate.
	TargetRate int

	// Reveal opens Dir in the system file browser after a successful export.
	Reveal bool

	// Now names files; defaults to time.Now.
	Now func() time.Time

	mu       sync.Mutex
	lastPath string
}

// DefaultExportDir returns ~/Desktop/MorseAudio, falling back to the
// working directory when the home directory is unknown.
func DefaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return exportSubdir
	}
	return filepath.Join(home, "Desktop", exportSubdir)
}

// LastPath returns the path of the most recent export, or "".
func (e *WAVExporter) LastPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastPath
}

// Consume writes samples to <Dir>/morse_<unixnano>.wav.
func (e *WAVExporter) Consume(ctx context.Context, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}
	if err := checkRate(sampleRate); err != nil {
		return err
	}

	dir := e.Dir
	if dir == "" {
		dir = DefaultExportDir()
	}
	if err := os.MkdirAll(dir, exportDirMode); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if e.TargetRate > 0 && e.TargetRate != sampleRate {
		resampled, err := Resample(samples, sampleRate, e.TargetRate)
		if err != nil {
			return err
		}
		samples, sampleRate = resampled, e.TargetRate
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	path := filepath.Join(dir, fmt.Sprintf("%s%d.wav", exportFileStem, now().UnixNano()))

	if err := WriteWAV(path, samples, sampleRate); err != nil {
		return err
	}

	e.mu.Lock()
	e.lastPath = path
	e.mu.Unlock()

	if e.Reveal {
		return RevealDir(ctx, dir)
	}
	return nil
}

// WriteWAV writes samples as a 16-bit mono PCM WAV file at path.
func WriteWAV(path string, samples []int16, sampleRate int) error {
	if err := checkRate(sampleRate); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth16, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data: pcm.ToInt(samples),
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth16,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}

// Resample converts samples between rates with the high quality preset and
// re-quantizes the result.
func Resample(samples []int16, fromRate, toRate int) ([]int16, error) {
	if err := checkRate(toRate); err != nil {
		return nil, err
	}
	out, err := resampling.ResampleMono(pcm.ToFloat(samples), float64(fromRate), float64(toRate), resampling.QualityHigh)
	if err != nil {
		return nil, fmt.Errorf("failed to resample %d Hz -> %d Hz: %w", fromRate, toRate, err)
	}
	return pcm.Quantize(out), nil
}
