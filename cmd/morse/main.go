// Command morse converts text to Morse code and back, and renders Morse as
// audio.
//
// Usage:
//
//	morse encode "CQ CQ DE N0CALL"          # print the token stream
//	morse encode --copy sos                 # also copy it to the clipboard
//	morse decode "... --- ..."              # print SOS
//	morse synth --plot --export sos         # plot and write ~/Desktop/MorseAudio/morse_<ts>.wav
//	morse synth --play --dot 60 --freq 650 "hello world"
//	morse synth --export --target-rate 8000 --out . sos
//	morse alphabet                          # list supported characters
//
// Text is read from standard input when no arguments are given.
package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "morse",
		Short:   "Morse code encoder, decoder and synthesizer",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			encodeCmd(),
			decodeCmd(),
			synthCmd(),
			alphabetCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}
	return bi.Main.Version
}
