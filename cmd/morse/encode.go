package main

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/avorio-dev/go-morse"
)

var clipboardWriteAll = clipboard.WriteAll

type EncodeParams struct {
	Alphabet string `short:"a" optional:"true" help:"Alphabet resource (.json, .yaml). Defaults to the built-in ITU table."`
	Copy     bool   `short:"c" optional:"true" help:"Copy the encoded stream to the clipboard."`
}

func encodeCmd() *cobra.Command {
	return boa.CmdT[EncodeParams]{
		Use:   "encode [text]",
		Short: "Encode text as a Morse token stream",
		Long: `Encode text as Morse. Letters are separated by a space and words by '|'.
Characters missing from the alphabet are replaced by a letter gap.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *EncodeParams, cmd *cobra.Command, args []string) {
			exitOnError("encode", runEncode(params, args, os.Stdin, os.Stdout))
		},
	}.ToCobra()
}

func runEncode(params *EncodeParams, args []string, stdin io.Reader, stdout io.Writer) error {
	alphabet, err := loadAlphabet(params.Alphabet)
	if err != nil {
		return err
	}
	text, err := inputText(args, stdin)
	if err != nil {
		return err
	}

	stream := morse.NewCodec(alphabet).Encode(text)
	fmt.Fprintln(stdout, stream)

	if params.Copy {
		if err := clipboardWriteAll(stream); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}
	return nil
}
