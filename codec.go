package morse

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Codec converts between text and Morse token streams using an alphabet.
type Codec struct {
	alphabet *Alphabet
}

// NewCodec creates a codec bound to alphabet.
func NewCodec(alphabet *Alphabet) *Codec {
	return &Codec{alphabet: alphabet}
}

// Alphabet returns the alphabet the codec was built with.
func (c *Codec) Alphabet() *Alphabet {
	return c.alphabet
}

// Normalize upper-cases text and trims surrounding whitespace.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ToUpper(text))
}

// Encode converts text to a token stream.
//
// Whitespace inside the text becomes a word gap. Characters missing from the
// alphabet become a single letter gap, which decodes the same as a letter
// boundary. Each character is followed by a letter gap separator; separators
// at either end of the stream are trimmed.
func (c *Codec) Encode(text string) string {
	normalized := Normalize(text)
	if normalized == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(normalized) * 4)
	for _, r := range normalized {
		switch {
		case unicode.IsSpace(r):
			sb.WriteRune(WordGap)
		default:
			if symbol, ok := c.alphabet.LookupSymbol(r); ok {
				sb.WriteString(symbol)
			} else {
				sb.WriteRune(LetterGap)
			}
		}
		sb.WriteRune(LetterGap)
	}

	return strings.Trim(sb.String(), string(LetterGap))
}

// Decode converts a token stream back to text.
//
// Words are split on word gaps and letters on runs of whitespace; empty
// tokens are skipped. Symbols missing from the alphabet decode to
// [Placeholder]. Decoded words are joined with a single space.
func (c *Codec) Decode(stream string) string {
	words := strings.Split(stream, string(WordGap))

	decoded := lo.FilterMap(words, func(word string, _ int) (string, bool) {
		letters := strings.Fields(word)
		if len(letters) == 0 {
			return "", false
		}
		return string(lo.Map(letters, func(symbol string, _ int) rune {
			return c.decodeLetter(symbol)
		})), true
	})

	return strings.Join(decoded, " ")
}

func (c *Codec) decodeLetter(symbol string) rune {
	if r, ok := c.alphabet.LookupChar(symbol); ok {
		return r
	}
	return Placeholder
}
