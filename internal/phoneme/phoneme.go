package phoneme

import (
	"strings"
)

// Stress is the lexical stress tier carried by a phoneme.
type Stress int

const (
	Unstressed Stress = iota
	Primary
	Secondary
)

// Digit returns the ARPAbet stress digit for s.
func (s Stress) Digit() byte {
	switch s {
	case Primary:
		return '1'
	case Secondary:
		return '2'
	default:
		return '0'
	}
}

func (s Stress) String() string {
	switch s {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unstressed"
	}
}

// BoundarySeparator is how the word boundary renders.
const BoundarySeparator = "|"

const boundarySymbol = " "

// Phoneme is one phonetic unit. The zero value is an empty Special phoneme.
type Phoneme struct {
	Symbol   string
	Stress   Stress
	Features Features

	// marked records whether the raw symbol carried a stress digit,
	// so String reproduces the input.
	marked bool
}

// New builds a phoneme from a raw ARPAbet token such as "AE1" or "k".
// A trailing 0, 1 or 2 is split off as stress. Unknown symbols produce
// a Special phoneme without features; New never fails.
func New(raw string) Phoneme {
	base, stress, marked := splitStress(raw)
	base = strings.ToUpper(base)

	return Phoneme{
		Symbol:   base,
		Stress:   stress,
		Features: templates[base],
		marked:   marked,
	}
}

// Parse converts a list of raw tokens with New.
func Parse(raws []string) []Phoneme {
	out := make([]Phoneme, 0, len(raws))
	for _, r := range raws {
		out = append(out, New(r))
	}
	return out
}

// WordBoundary returns the sentinel placed between words.
func WordBoundary() Phoneme {
	return Phoneme{Symbol: boundarySymbol, Features: Features{Type: Special}}
}

func splitStress(raw string) (string, Stress, bool) {
	if raw == "" {
		return raw, Unstressed, false
	}
	base := raw[:len(raw)-1]
	switch raw[len(raw)-1] {
	case '0':
		return base, Unstressed, true
	case '1':
		return base, Primary, true
	case '2':
		return base, Secondary, true
	}
	return raw, Unstressed, false
}

// IsVowel reports whether p is classified as a vowel.
func (p Phoneme) IsVowel() bool {
	return p.Features.Type == Vowel
}

// IsConsonant reports whether p is classified as a consonant.
func (p Phoneme) IsConsonant() bool {
	return p.Features.Type == Consonant
}

// IsBoundary reports whether p is the word boundary sentinel.
func (p Phoneme) IsBoundary() bool {
	return p.Features.Type == Special && p.Symbol == boundarySymbol
}

// String renders the symbol followed by its stress digit when one was
// given. The word boundary renders as BoundarySeparator.
func (p Phoneme) String() string {
	if p.IsBoundary() {
		return BoundarySeparator
	}
	if !p.marked {
		return p.Symbol
	}
	return p.Symbol + string(p.Stress.Digit())
}

// Join renders a sequence separated by single spaces.
func Join(seq []Phoneme) string {
	parts := make([]string, len(seq))
	for i, p := range seq {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// Inventory returns the 39 ARPAbet base symbols, vowels first.
func Inventory() []string {
	out := make([]string, 0, len(vowelOrder)+len(consonantOrder))
	out = append(out, vowelOrder...)
	return append(out, consonantOrder...)
}

// Valid reports whether token is an inventory symbol with an optional
// stress digit. Case is ignored.
func Valid(token string) bool {
	base, _, _ := splitStress(token)
	_, ok := templates[strings.ToUpper(base)]
	return ok
}
