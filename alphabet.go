package morse

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// ErrInvalidAlphabet is returned when an alphabet table is empty or inconsistent.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

// Class distinguishes alphabet groups for help display. Lookup ignores it
// apart from the order in which groups are searched.
type Class int

// Alphabet classes in lookup order.
const (
	ClassLetter Class = iota
	ClassDigit
	ClassPunctuation
	numClasses
)

// String returns the display name of the class.
func (c Class) String() string {
	switch c {
	case ClassLetter:
		return "letters"
	case ClassDigit:
		return "digits"
	case ClassPunctuation:
		return "punctuation"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Classes returns all classes in lookup order.
func Classes() []Class {
	return []Class{ClassLetter, ClassDigit, ClassPunctuation}
}

// Groups holds the character to symbol tables of an alphabet, split by class.
type Groups struct {
	Letters     map[rune]string
	Digits      map[rune]string
	Punctuation map[rune]string
}

func (g Groups) byClass() [numClasses]map[rune]string {
	return [numClasses]map[rune]string{g.Letters, g.Digits, g.Punctuation}
}

// Entry is a single character/symbol pair.
type Entry struct {
	Char   rune
	Symbol string
}

// Alphabet is an immutable bidirectional mapping between characters and Morse
// symbols. Build it with [NewAlphabet] or one of the loaders.
type Alphabet struct {
	forward [numClasses]map[rune]string
	reverse map[string]rune
}

// NewAlphabet validates groups and builds the reverse table by inversion.
//
// Every symbol must be non-empty, consist only of dots and dashes and be
// unique across all groups. Characters are stored upper-cased.
func NewAlphabet(groups Groups) (*Alphabet, error) {
	a := &Alphabet{reverse: make(map[string]rune)}

	for class, table := range groups.byClass() {
		a.forward[class] = make(map[rune]string, len(table))
		for char, symbol := range table {
			char = unicode.ToUpper(char)
			if err := validateSymbol(symbol); err != nil {
				return nil, fmt.Errorf("%w: %s %q: %w", ErrInvalidAlphabet, Class(class), char, err)
			}
			if char == LetterGap || char == WordGap {
				return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidAlphabet, char)
			}
			if prev, dup := a.reverse[symbol]; dup && prev != char {
				return nil, fmt.Errorf("%w: symbol %q maps to both %q and %q",
					ErrInvalidAlphabet, symbol, prev, char)
			}
			a.forward[class][char] = symbol
			a.reverse[symbol] = char
		}
	}

	if len(a.reverse) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidAlphabet)
	}

	return a, nil
}

func validateSymbol(symbol string) error {
	if symbol == "" {
		return errors.New("empty symbol")
	}
	if strings.Trim(symbol, string([]rune{Dot, Dash})) != "" {
		return fmt.Errorf("symbol %q contains characters other than dots and dashes", symbol)
	}
	return nil
}

// LookupSymbol returns the Morse symbol for r. Letters are searched before
// digits before punctuation.
func (a *Alphabet) LookupSymbol(r rune) (string, bool) {
	for _, table := range a.forward {
		if symbol, ok := table[r]; ok {
			return symbol, true
		}
	}
	return "", false
}

// LookupChar returns the character for a Morse symbol.
func (a *Alphabet) LookupChar(symbol string) (rune, bool) {
	r, ok := a.reverse[symbol]
	return r, ok
}

// Len returns the number of characters in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.reverse)
}

// Entries returns the entries of a class sorted by character.
func (a *Alphabet) Entries(class Class) []Entry {
	if class < 0 || class >= numClasses {
		return nil
	}
	table := a.forward[class]
	entries := lo.MapToSlice(table, func(char rune, symbol string) Entry {
		return Entry{Char: char, Symbol: symbol}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Char < entries[j].Char })
	return entries
}

// Groups returns a copy of the forward tables.
func (a *Alphabet) Groups() Groups {
	return Groups{
		Letters:     lo.Assign(a.forward[ClassLetter]),
		Digits:      lo.Assign(a.forward[ClassDigit]),
		Punctuation: lo.Assign(a.forward[ClassPunctuation]),
	}
}
