package rules

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/snonux/g2p/internal/phoneme"
)

// Boundary is the context value that stands for the edge of the word.
const Boundary = "_"

// Silent is the phoneme-list placeholder for rules that emit nothing.
const Silent = "-"

// Condition is an extra predicate a rule requires at its match position.
type Condition int

const (
	WordStart Condition = iota + 1
	WordEnd
	BeforeVowel
	AfterVowel
	Stressed
	Unstressed
)

var conditionNames = map[Condition]string{
	WordStart:   "word-start",
	WordEnd:     "word-end",
	BeforeVowel: "before-vowel",
	AfterVowel:  "after-vowel",
	Stressed:    "stressed",
	Unstressed:  "unstressed",
}

func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return "condition(" + strconv.Itoa(int(c)) + ")"
}

// ParseCondition maps a condition name like "word-end" to its value.
func ParseCondition(s string) (Condition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range conditionNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown condition %q", s)
}

// Rule is a letter-to-sound rule. Left and Right are either empty, the
// Boundary sentinel or a literal that must appear next to Pattern.
type Rule struct {
	Pattern    string
	Left       string
	Right      string
	Phonemes   []phoneme.Phoneme
	Priority   int
	Conditions []Condition
}

// String renders the rule as a rule-file directive.
func (r Rule) String() string {
	out := Silent
	if len(r.Phonemes) > 0 {
		out = phoneme.Join(r.Phonemes)
	}
	line := strings.Join([]string{r.Pattern, r.Left, r.Right, out, strconv.Itoa(r.Priority)}, "|")
	if len(r.Conditions) > 0 {
		names := make([]string, len(r.Conditions))
		for i, c := range r.Conditions {
			names[i] = c.String()
		}
		line += "|" + strings.Join(names, ",")
	}
	return line
}

// compiledRule caches the lowercased rune forms used while matching.
type compiledRule struct {
	rule    Rule
	pattern []rune
	left    []rune
	right   []rune
}

func compile(r Rule) (compiledRule, error) {
	if r.Pattern == "" {
		return compiledRule{}, fmt.Errorf("rule has empty pattern")
	}
	for _, c := range r.Conditions {
		if _, ok := conditionNames[c]; !ok {
			return compiledRule{}, fmt.Errorf("rule %q: unknown %s", r.Pattern, c)
		}
	}
	r.Pattern = strings.ToLower(r.Pattern)
	r.Left = strings.ToLower(r.Left)
	r.Right = strings.ToLower(r.Right)
	r.Phonemes = append([]phoneme.Phoneme(nil), r.Phonemes...)
	r.Conditions = append([]Condition(nil), r.Conditions...)

	return compiledRule{
		rule:    r,
		pattern: []rune(r.Pattern),
		left:    []rune(r.Left),
		right:   []rune(r.Right),
	}, nil
}

// matches reports whether the rule applies to the lowercased word at pos.
func (c *compiledRule) matches(word []rune, pos int) bool {
	end := pos + len(c.pattern)
	if end > len(word) || !hasAt(word, pos, c.pattern) {
		return false
	}

	switch {
	case len(c.right) == 0:
	case c.rule.Right == Boundary:
		if end != len(word) {
			return false
		}
	default:
		if !hasAt(word, end, c.right) {
			return false
		}
	}

	switch {
	case len(c.left) == 0:
	case c.rule.Left == Boundary:
		if pos != 0 {
			return false
		}
	default:
		start := pos - len(c.left)
		if start < 0 || !hasAt(word, start, c.left) {
			return false
		}
	}

	for _, cond := range c.rule.Conditions {
		if !holds(cond, word, pos, end) {
			return false
		}
	}
	return true
}

func hasAt(word []rune, pos int, lit []rune) bool {
	if pos+len(lit) > len(word) {
		return false
	}
	for i, r := range lit {
		if word[pos+i] != r {
			return false
		}
	}
	return true
}

// holds evaluates a condition for a pattern spanning word[pos:end].
// Stress conditions are accepted but not evaluated.
func holds(c Condition, word []rune, pos, end int) bool {
	switch c {
	case WordStart:
		return pos == 0
	case WordEnd:
		return end == len(word)
	case BeforeVowel:
		return end < len(word) && isVowel(word[end])
	case AfterVowel:
		return pos > 0 && isVowel(word[pos-1])
	default:
		return true
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
