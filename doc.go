// Package morse converts between plain text and Morse code and renders Morse
// token streams as PCM audio.
//
// # Features
//
//   - Immutable, bidirectional [Alphabet] loaded from JSON or YAML, with an
//     embedded ITU default
//   - Text to Morse encoding and tolerant Morse to text decoding via [Codec]
//   - Sine-tone synthesis of token streams via [Synthesizer] with exact,
//     predictable sample counts
//   - Single-pass 16-bit quantization via [Quantize]
//   - Sink adapters for WAV export, playback and plotting in package sink
//
// # Quick Start
//
// For a one-shot conversion with the default alphabet and timing:
//
//	stream := morse.Encode("SOS")   // "... --- ..."
//	text := morse.Decode(stream)    // "SOS"
//
//	pcm, err := morse.Render("SOS")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For explicit control over alphabet and synthesis parameters:
//
//	alphabet, err := morse.LoadAlphabetFile("alphabet.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	codec := morse.NewCodec(alphabet)
//
//	cfg := morse.DefaultConfig()
//	cfg.Timing.Dot = 60 * time.Millisecond
//	synth, err := morse.NewSynthesizer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pcm := synth.SynthesizeInt16(codec.Encode("CQ CQ"))
//
// # Token Stream
//
// Encoder output and synthesizer/decoder input share a four-symbol alphabet:
//
//	.   dot (tone, one dot long)
//	-   dash (tone, three dots long)
//	' ' letter gap (silence, three dots long)
//	|   word gap (silence, seven dots long)
//
// Every token is followed by one dot of silence and the whole buffer is
// bracketed by a dash of silence at each end. Unrecognized tokens produce no
// samples of their own.
//
// # Unknown Input
//
// Encoding, decoding and synthesis are total functions. Characters missing
// from the alphabet encode to a letter gap, symbols missing from the alphabet
// decode to [Placeholder], and unknown tokens are skipped by the synthesizer.
// Only alphabet loading can fail.
//
// # Thread Safety
//
// [Alphabet], [Codec] and [Synthesizer] are immutable after construction and
// safe for concurrent use by multiple goroutines.
package morse
