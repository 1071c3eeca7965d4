// Package normalize prepares raw English text for conversion: it folds
// case, expands common abbreviations and small numbers, strips
// punctuation and splits the result into word tokens.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Normalizer turns raw text into ordered word tokens.
type Normalizer interface {
	// Normalize folds case, expands abbreviations and numerals, strips
	// punctuation and collapses whitespace.
	Normalize(text string) string

	// Tokenize splits normalized text into words.
	Tokenize(text string) []string
}

var abbreviations = map[string]string{
	"dr":   "doctor",
	"mr":   "mister",
	"mrs":  "misses",
	"ms":   "miss",
	"prof": "professor",
	"st":   "street",
	"ave":  "avenue",
	"blvd": "boulevard",
	"etc":  "etcetera",
	"vs":   "versus",
}

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
	"eighteen", "nineteen", "twenty",
}

var (
	abbrevRe = regexp.MustCompile(`\b(dr|mr|mrs|ms|prof|st|ave|blvd|etc|vs)\.`)
	numberRe = regexp.MustCompile(`\b\d+\b`)
	punctRe  = regexp.MustCompile(`[^\p{L}\p{N}_\s']`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// English is the default Normalizer.
type English struct{}

// NewEnglish creates an English normalizer
func NewEnglish() *English {
	return &English{}
}

// Normalize implements Normalizer.
func (English) Normalize(text string) string {
	s := strings.ToLower(text)
	s = abbrevRe.ReplaceAllStringFunc(s, func(m string) string {
		return abbreviations[strings.TrimSuffix(m, ".")]
	})
	s = numberRe.ReplaceAllStringFunc(s, spellNumber)
	s = punctRe.ReplaceAllString(s, " ")
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Tokenize implements Normalizer. Non-letters are trimmed from both
// ends of each field and empty tokens are dropped.
func (English) Tokenize(text string) []string {
	var tokens []string
	for _, f := range strings.Fields(text) {
		tok := strings.TrimFunc(f, func(r rune) bool { return !unicode.IsLetter(r) })
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// spellNumber spells out 0 to 20 and leaves other numbers unchanged.
func spellNumber(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil || n >= len(numberWords) || strconv.Itoa(n) != digits {
		return digits
	}
	return numberWords[n]
}
