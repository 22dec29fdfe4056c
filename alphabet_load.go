package morse

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an alphabet resource.
type Format string

// Supported alphabet resource formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed alphabet.json
var defaultAlphabetJSON []byte

var (
	defaultOnce     sync.Once
	defaultAlphabet *Alphabet
	defaultErr      error
)

// resourceDocument mirrors the alphabet resource layout:
//
//	morse_code:
//	  str_to_morse: {chars: {...}, digits: {...}, punctuation_marks: {...}}
//	  morse_to_str: {chars: {...}, digits: {...}, punctuation_marks: {...}}
type resourceDocument struct {
	MorseCode struct {
		StrToMorse resourceGroups `json:"str_to_morse" yaml:"str_to_morse"`
		MorseToStr resourceGroups `json:"morse_to_str" yaml:"morse_to_str"`
	} `json:"morse_code" yaml:"morse_code"`
}

type resourceGroups struct {
	Chars       map[string]string `json:"chars" yaml:"chars"`
	Digits      map[string]string `json:"digits" yaml:"digits"`
	Punctuation map[string]string `json:"punctuation_marks" yaml:"punctuation_marks"`
}

func (g resourceGroups) empty() bool {
	return len(g.Chars) == 0 && len(g.Digits) == 0 && len(g.Punctuation) == 0
}

// DefaultAlphabet returns the embedded ITU alphabet (letters, digits and
// common punctuation). It is parsed once and shared.
func DefaultAlphabet() (*Alphabet, error) {
	defaultOnce.Do(func() {
		defaultAlphabet, defaultErr = LoadAlphabet(bytes.NewReader(defaultAlphabetJSON), FormatJSON)
	})
	return defaultAlphabet, defaultErr
}

// MustDefaultAlphabet is like DefaultAlphabet but panics on error.
func MustDefaultAlphabet() *Alphabet {
	a, err := DefaultAlphabet()
	if err != nil {
		panic(fmt.Sprintf("morse: embedded alphabet: %v", err))
	}
	return a
}

// LoadAlphabetFile loads an alphabet resource, choosing the format from the
// file extension (.json, .yaml, .yml).
func LoadAlphabetFile(path string) (*Alphabet, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: unsupported resource extension %q", ErrInvalidAlphabet, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alphabet resource: %w", err)
	}
	defer func() { _ = f.Close() }()

	a, err := LoadAlphabet(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// LoadAlphabet parses an alphabet resource.
//
// The str_to_morse tables are required. When morse_to_str is present every
// entry must agree with str_to_morse; when absent it is derived by inversion.
func LoadAlphabet(r io.Reader, format Format) (*Alphabet, error) {
	var doc resourceDocument
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAlphabet, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAlphabet, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidAlphabet, format)
	}

	forward := doc.MorseCode.StrToMorse
	if forward.empty() {
		return nil, fmt.Errorf("%w: str_to_morse is empty", ErrInvalidAlphabet)
	}

	var groups Groups
	var err error
	if groups.Letters, err = runeKeys(forward.Chars); err != nil {
		return nil, err
	}
	if groups.Digits, err = runeKeys(forward.Digits); err != nil {
		return nil, err
	}
	if groups.Punctuation, err = runeKeys(forward.Punctuation); err != nil {
		return nil, err
	}

	a, err := NewAlphabet(groups)
	if err != nil {
		return nil, err
	}

	reverse := doc.MorseCode.MorseToStr
	if !reverse.empty() {
		if err := a.checkReverse(reverse); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func runeKeys(table map[string]string) (map[rune]string, error) {
	out := make(map[rune]string, len(table))
	for key, symbol := range table {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("%w: key %q is not a single character", ErrInvalidAlphabet, key)
		}
		out[r] = symbol
	}
	return out, nil
}

func (a *Alphabet) checkReverse(g resourceGroups) error {
	count := 0
	for _, table := range []map[string]string{g.Chars, g.Digits, g.Punctuation} {
		for symbol, char := range table {
			got, ok := a.LookupChar(symbol)
			if !ok || !strings.EqualFold(string(got), char) {
				return fmt.Errorf("%w: morse_to_str %q -> %q disagrees with str_to_morse",
					ErrInvalidAlphabet, symbol, char)
			}
			count++
		}
	}
	if count != a.Len() {
		return fmt.Errorf("%w: morse_to_str has %d entries, str_to_morse has %d",
			ErrInvalidAlphabet, count, a.Len())
	}
	return nil
}
