package morse_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avorio-dev/go-morse"
	"github.com/avorio-dev/go-morse/internal/testutil"
)

func TestDefaultAlphabet(t *testing.T) {
	a, err := morse.DefaultAlphabet()
	require.NoError(t, err)

	assert.Len(t, a.Entries(morse.ClassLetter), 26)
	assert.Len(t, a.Entries(morse.ClassDigit), 10)
	assert.NotEmpty(t, a.Entries(morse.ClassPunctuation))

	symbol, ok := a.LookupSymbol('S')
	require.True(t, ok)
	assert.Equal(t, "...", symbol)

	char, ok := a.LookupChar("---")
	require.True(t, ok)
	assert.Equal(t, 'O', char)

	// Every forward entry has a matching reverse entry.
	for _, class := range morse.Classes() {
		for _, e := range a.Entries(class) {
			got, ok := a.LookupChar(e.Symbol)
			assert.True(t, ok, "missing reverse entry for %q", e.Symbol)
			assert.Equal(t, e.Char, got)
		}
	}
}

func TestAlphabet_LookupMisses(t *testing.T) {
	a := testutil.Alphabet(t)

	_, ok := a.LookupSymbol('Z')
	assert.False(t, ok)
	_, ok = a.LookupSymbol('s')
	assert.False(t, ok, "lookup is case sensitive; the encoder normalizes")
	_, ok = a.LookupChar("........")
	assert.False(t, ok)
	_, ok = a.LookupChar("")
	assert.False(t, ok)
}

func TestNewAlphabet_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		groups morse.Groups
		errMsg string
	}{
		{"empty", morse.Groups{}, "no entries"},
		{"empty symbol", morse.Groups{Letters: map[rune]string{'A': ""}}, "empty symbol"},
		{"bad symbol", morse.Groups{Letters: map[rune]string{'A': ".x-"}}, "other than dots and dashes"},
		{
			"duplicate symbol",
			morse.Groups{Letters: map[rune]string{'A': ".-"}, Digits: map[rune]string{'1': ".-"}},
			"maps to both",
		},
		{"reserved char", morse.Groups{Punctuation: map[rune]string{'|': ".-.-"}}, "reserved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := morse.NewAlphabet(tt.groups)
			require.ErrorIs(t, err, morse.ErrInvalidAlphabet)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewAlphabet_UppercasesKeys(t *testing.T) {
	a, err := morse.NewAlphabet(morse.Groups{Letters: map[rune]string{'e': "."}})
	require.NoError(t, err)

	symbol, ok := a.LookupSymbol('E')
	require.True(t, ok)
	assert.Equal(t, ".", symbol)
}

func TestAlphabet_LookupOrder(t *testing.T) {
	// The same character in two classes resolves to the letter entry.
	a, err := morse.NewAlphabet(morse.Groups{
		Letters:     map[rune]string{'X': "-..-"},
		Punctuation: map[rune]string{'X': ".-.-.-.-"},
	})
	require.NoError(t, err)

	symbol, ok := a.LookupSymbol('X')
	require.True(t, ok)
	assert.Equal(t, "-..-", symbol)
}

func TestAlphabet_GroupsIsCopy(t *testing.T) {
	a := testutil.Alphabet(t)
	g := a.Groups()
	g.Letters['Z'] = "--.."

	_, ok := a.LookupSymbol('Z')
	assert.False(t, ok)
}

const yamlAlphabet = `
morse_code:
  str_to_morse:
    chars:
      s: "..."
      o: "---"
    digits:
      "5": "....."
  morse_to_str:
    chars:
      "...": S
      "---": O
    digits:
      ".....": "5"
`

func TestLoadAlphabet_YAML(t *testing.T) {
	a, err := morse.LoadAlphabet(strings.NewReader(yamlAlphabet), morse.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())

	symbol, ok := a.LookupSymbol('S')
	require.True(t, ok)
	assert.Equal(t, "...", symbol)
}

func TestLoadAlphabet_DerivesReverse(t *testing.T) {
	doc := `{"morse_code": {"str_to_morse": {"chars": {"E": ".", "T": "-"}}}}`
	a, err := morse.LoadAlphabet(strings.NewReader(doc), morse.FormatJSON)
	require.NoError(t, err)

	char, ok := a.LookupChar("-")
	require.True(t, ok)
	assert.Equal(t, 'T', char)
}

func TestLoadAlphabet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{"malformed json", `{"morse_code":`, "invalid alphabet"},
		{"missing tables", `{"morse_code": {}}`, "str_to_morse is empty"},
		{"multi-char key", `{"morse_code": {"str_to_morse": {"chars": {"AB": ".-"}}}}`, "not a single character"},
		{
			"inconsistent reverse",
			`{"morse_code": {"str_to_morse": {"chars": {"E": "."}}, "morse_to_str": {"chars": {".": "T"}}}}`,
			"disagrees",
		},
		{
			"incomplete reverse",
			`{"morse_code": {"str_to_morse": {"chars": {"E": ".", "T": "-"}}, "morse_to_str": {"chars": {".": "E"}}}}`,
			"has 1 entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := morse.LoadAlphabet(strings.NewReader(tt.doc), morse.FormatJSON)
			require.ErrorIs(t, err, morse.ErrInvalidAlphabet)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadAlphabetFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "alphabet.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlAlphabet), 0o644))
	a, err := morse.LoadAlphabetFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())

	_, err = morse.LoadAlphabetFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open alphabet resource")

	txtPath := filepath.Join(dir, "alphabet.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("A .-"), 0o644))
	_, err = morse.LoadAlphabetFile(txtPath)
	require.ErrorIs(t, err, morse.ErrInvalidAlphabet)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "letters", morse.ClassLetter.String())
	assert.Equal(t, "digits", morse.ClassDigit.String())
	assert.Equal(t, "punctuation", morse.ClassPunctuation.String())
	assert.Equal(t, "Class(9)", morse.Class(9).String())
}
