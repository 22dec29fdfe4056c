package main

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/avorio-dev/go-morse"
)

type AlphabetParams struct {
	Alphabet string `short:"a" optional:"true" help:"Alphabet resource (.json, .yaml). Defaults to the built-in ITU table."`
}

func alphabetCmd() *cobra.Command {
	return boa.CmdT[AlphabetParams]{
		Use:         "alphabet",
		Short:       "List supported characters and their Morse symbols",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *AlphabetParams, cmd *cobra.Command, args []string) {
			exitOnError("alphabet", runAlphabet(params, os.Stdout))
		},
	}.ToCobra()
}

func runAlphabet(params *AlphabetParams, stdout io.Writer) error {
	alphabet, err := loadAlphabet(params.Alphabet)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Class", "Char", "Symbol"})
	for _, class := range morse.Classes() {
		for _, e := range alphabet.Entries(class) {
			t.AppendRow(table.Row{class, string(e.Char), e.Symbol})
		}
		t.AppendSeparator()
	}
	t.AppendFooter(table.Row{"", "Total", fmt.Sprint(alphabet.Len())})
	t.Render()
	return nil
}
