package main

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/avorio-dev/go-morse"
)

type DecodeParams struct {
	Alphabet string `short:"a" optional:"true" help:"Alphabet resource (.json, .yaml). Defaults to the built-in ITU table."`
}

func decodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:   "decode [stream]",
		Short: "Decode a Morse token stream to text",
		Long: `Decode Morse written with '.', '-', spaces between letters and '|' between words.
Unknown symbols decode to '?'.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			exitOnError("decode", runDecode(params, args, os.Stdin, os.Stdout))
		},
	}.ToCobra()
}

func runDecode(params *DecodeParams, args []string, stdin io.Reader, stdout io.Writer) error {
	alphabet, err := loadAlphabet(params.Alphabet)
	if err != nil {
		return err
	}
	stream, err := inputText(args, stdin)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, morse.NewCodec(alphabet).Decode(stream))
	return nil
}
