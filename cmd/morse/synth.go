package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/avorio-dev/go-morse"
	"github.com/avorio-dev/go-morse/internal/analysis"
	"github.com/avorio-dev/go-morse/internal/pcm"
	"github.com/avorio-dev/go-morse/sink"
)

var errNoSink = errors.New("choose at least one of --play, --plot, --export")

// newPlayer is replaced in tests.
var newPlayer = func() morse.Sink { return sink.NewPlayer() }

type SynthParams struct {
	Alphabet   string  `short:"a" optional:"true" help:"Alphabet resource (.json, .yaml). Defaults to the built-in ITU table."`
	Stream     bool    `short:"s" optional:"true" help:"Treat input as a Morse token stream instead of text."`
	Play       bool    `short:"p" optional:"true" help:"Play the audio (blocks until done)."`
	Plot       bool    `short:"g" optional:"true" help:"Print a waveform plot."`
	Export     bool    `short:"e" optional:"true" help:"Write a 16-bit mono WAV file."`
	Out        string  `short:"o" optional:"true" help:"Export directory. Defaults to ~/Desktop/MorseAudio."`
	TargetRate int     `optional:"true" help:"Resample the exported file to this rate in Hz (0 keeps the synthesis rate)." default:"0"`
	Reveal     bool    `optional:"true" help:"Open the export directory after writing."`
	Freq       float64 `short:"f" optional:"true" help:"Tone frequency in Hz." default:"800"`
	Rate       int     `short:"r" optional:"true" help:"Synthesis sample rate in Hz." default:"44100"`
	Dot        int     `short:"d" optional:"true" help:"Dot duration in milliseconds. Dash is 3 dots, word gap 7." default:"100"`
	Verbose    bool    `short:"v" optional:"true" help:"Log synthesis statistics."`
}

func synthCmd() *cobra.Command {
	return boa.CmdT[SynthParams]{
		Use:   "synth [text]",
		Short: "Render Morse as audio and play, plot or export it",
		Long: `Encode text (or take a token stream with --stream) and render it as an 800 Hz
sine tone. Select any combination of --play, --plot and --export.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *SynthParams, cmd *cobra.Command, args []string) {
			exitOnError("synth", runSynth(cmd.Context(), params, args, os.Stdin, os.Stdout))
		},
	}.ToCobra()
}

func (p *SynthParams) config() morse.Config {
	cfg := morse.DefaultConfig()
	cfg.SampleRate = p.Rate
	cfg.Frequency = p.Freq
	cfg.Timing.Dot = time.Duration(p.Dot) * time.Millisecond
	return cfg
}

func (p *SynthParams) sinks(stdout io.Writer) ([]morse.Sink, *sink.WAVExporter) {
	var sinks []morse.Sink
	var exporter *sink.WAVExporter
	if p.Play {
		sinks = append(sinks, newPlayer())
	}
	if p.Plot {
		sinks = append(sinks, sink.NewPlotter(stdout))
	}
	if p.Export {
		exporter = &sink.WAVExporter{Dir: p.Out, TargetRate: p.TargetRate, Reveal: p.Reveal}
		sinks = append(sinks, exporter)
	}
	return sinks, exporter
}

func runSynth(ctx context.Context, params *SynthParams, args []string, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sinks, exporter := params.sinks(stdout)
	if len(sinks) == 0 {
		return errNoSink
	}

	alphabet, err := loadAlphabet(params.Alphabet)
	if err != nil {
		return err
	}
	pipeline, err := morse.NewPipeline(alphabet, params.config())
	if err != nil {
		return err
	}
	input, err := inputText(args, stdin)
	if err != nil {
		return err
	}

	var res *morse.Result
	if params.Stream {
		res = pipeline.RenderStream(pipeline.Codec().Decode(input), input)
	} else {
		res = pipeline.Render(input)
	}

	if params.Verbose {
		logStats(res)
	}

	if err := morse.Deliver(ctx, res, sinks...); err != nil {
		return err
	}

	if exporter != nil {
		fmt.Fprintf(stdout, "Exported %s\n", exporter.LastPath())
	}
	return nil
}

func logStats(res *morse.Result) {
	st := analysis.Analyze(pcm.ToFloat(res.Samples), res.SampleRate)
	log.Printf("Text: %q", res.Text)
	log.Printf("Stream: %q", res.Stream)
	log.Printf("Samples: %d at %d Hz (%v)", st.Samples, st.SampleRate, st.Duration)
	log.Printf("Peak: %.4f, RMS: %.4f, dominant frequency: %.1f Hz", st.Peak, st.RMS, st.DominantHz)
}
