package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/avorio-dev/go-morse"
)

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// loadAlphabet returns the alphabet at path, or the embedded one when path is empty.
func loadAlphabet(path string) (*morse.Alphabet, error) {
	if path == "" {
		return morse.DefaultAlphabet()
	}
	return morse.LoadAlphabetFile(path)
}

// inputText joins args, or reads all of stdin when there are none.
func inputText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}

// exitOnError prints err prefixed with the command name and exits non-zero.
func exitOnError(name string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "morse %s: %v\n", name, err)
	os.Exit(1)
}
