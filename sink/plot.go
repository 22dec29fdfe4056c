package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avorio-dev/go-morse/internal/analysis"
	"github.com/avorio-dev/go-morse/internal/pcm"
)

// Plot defaults.
const (
	DefaultPlotWidth  = 72
	DefaultPlotHeight = 15
	defaultPlotTitle  = "Audio Waveform"

	plotMark  = "█"
	plotAxis  = "─"
	plotBlank = " "
)

// Plotter renders amplitude against sample index as a text chart.
type Plotter struct {
	Out    io.Writer
	Width  int
	Height int
	Title  string
}

// NewPlotter creates a plotter with default dimensions writing to out.
func NewPlotter(out io.Writer) *Plotter {
	return &Plotter{
		Out:    out,
		Width:  DefaultPlotWidth,
		Height: DefaultPlotHeight,
		Title:  defaultPlotTitle,
	}
}

// Consume writes the chart.
func (p *Plotter) Consume(_ context.Context, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}
	if err := checkRate(sampleRate); err != nil {
		return err
	}

	width := p.Width
	if width <= 0 {
		width = DefaultPlotWidth
	}
	height := p.Height
	if height <= 0 {
		height = DefaultPlotHeight
	}

	r := lipgloss.NewRenderer(p.Out)
	titleStyle := r.NewStyle().Bold(true)
	labelStyle := r.NewStyle().Faint(true)

	lows, highs := analysis.Envelope(pcm.ToFloat(samples), width)
	rows := plotRows(lows, highs, height)

	var sb strings.Builder
	if p.Title != "" {
		sb.WriteString(titleStyle.Render(p.Title))
		sb.WriteString("\n")
	}
	for i, row := range rows {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%5s", axisLabel(i, height))))
		sb.WriteString(" │")
		sb.WriteString(row)
		sb.WriteString("\n")
	}
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%5s  0%*d", "", len(lows)-1, len(samples)-1)))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%5s  Sample (%d Hz), Amplitude [-1, 1]", "", sampleRate)))
	sb.WriteString("\n")

	_, err := io.WriteString(p.Out, sb.String())
	return err
}

// plotRows rasterizes column envelopes into height rows, top row first.
// A cell is marked when the column range overlaps the row's amplitude band.
func plotRows(lows, highs []float64, height int) []string {
	rows := make([]string, height)
	band := 2.0 / float64(height)
	mid := height / 2

	for i := range height {
		top := 1 - float64(i)*band
		bottom := top - band

		var sb strings.Builder
		for col := range lows {
			switch {
			case highs[col] >= bottom && lows[col] <= top && (highs[col] != 0 || lows[col] != 0):
				sb.WriteString(plotMark)
			case i == mid:
				sb.WriteString(plotAxis)
			default:
				sb.WriteString(plotBlank)
			}
		}
		rows[i] = sb.String()
	}
	return rows
}

func axisLabel(row, height int) string {
	switch row {
	case 0:
		return "+1.0"
	case height / 2:
		return "0.0"
	case height - 1:
		return "-1.0"
	default:
		return ""
	}
}
