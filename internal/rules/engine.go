package rules

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"codeberg.org/snonux/g2p/internal"
	"codeberg.org/snonux/g2p/internal/phoneme"
)

// Engine derives pronunciations from spelling. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	source    string
	rules     []compiledRule
	index     map[rune][]int
	irregular map[string][]phoneme.Phoneme
}

// Step records one scan step of Trace.
type Step struct {
	Pos       int   // rune offset in the word
	Consumed  int   // runes consumed, always at least 1
	Rule      *Rule // nil for irregular words and fallback letters
	Irregular bool
	Phonemes  []phoneme.Phoneme
}

// NewEngine loads src and builds an engine from it.
func NewEngine(src Source) (*Engine, error) {
	t, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %s: %w", src.Name(), err)
	}
	e, err := New(t)
	if err != nil {
		return nil, fmt.Errorf("rules from %s: %w", src.Name(), err)
	}
	e.source = src.Name()
	return e, nil
}

// New builds an engine from a table. Rules are ordered by descending
// priority, keeping table order among equal priorities.
func New(t Table) (*Engine, error) {
	if len(t.Rules) == 0 && len(t.Irregular) == 0 {
		return nil, internal.ErrSourceEmpty
	}

	e := &Engine{
		rules:     make([]compiledRule, 0, len(t.Rules)),
		source:    "table",
		index:     make(map[rune][]int),
		irregular: make(map[string][]phoneme.Phoneme, len(t.Irregular)),
	}
	for _, r := range t.Rules {
		c, err := compile(r)
		if err != nil {
			return nil, err
		}
		e.rules = append(e.rules, c)
	}
	sort.SliceStable(e.rules, func(i, j int) bool {
		return e.rules[i].rule.Priority > e.rules[j].rule.Priority
	})
	for i, c := range e.rules {
		first := c.pattern[0]
		e.index[first] = append(e.index[first], i)
	}
	for word, seq := range t.Irregular {
		e.irregular[strings.ToLower(word)] = append([]phoneme.Phoneme(nil), seq...)
	}
	return e, nil
}

// Apply converts word to phonemes. It never fails: characters no rule
// covers fall back to a single-letter mapping or are skipped.
func (e *Engine) Apply(word string) []phoneme.Phoneme {
	var out []phoneme.Phoneme
	e.scan(word, func(s Step) {
		out = append(out, s.Phonemes...)
	})
	return out
}

// Trace returns the steps Apply takes for word.
func (e *Engine) Trace(word string) []Step {
	var steps []Step
	e.scan(word, func(s Step) {
		steps = append(steps, s)
	})
	return steps
}

func (e *Engine) scan(word string, emit func(Step)) {
	runes := []rune(word)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}

	if seq, ok := e.irregular[string(runes)]; ok {
		emit(Step{
			Consumed:  len(runes),
			Irregular: true,
			Phonemes:  append([]phoneme.Phoneme(nil), seq...),
		})
		return
	}

	emitted := false
	for pos := 0; pos < len(runes); {
		if c := e.best(runes, pos, emitted); c != nil {
			r := c.rule
			emit(Step{
				Pos:      pos,
				Consumed: len(c.pattern),
				Rule:     &r,
				Phonemes: append([]phoneme.Phoneme(nil), r.Phonemes...),
			})
			emitted = emitted || len(r.Phonemes) > 0
			pos += len(c.pattern)
			continue
		}

		step := Step{Pos: pos, Consumed: 1}
		if p, ok := fallback[runes[pos]]; ok {
			step.Phonemes = []phoneme.Phoneme{p}
			emitted = true
		}
		emit(step)
		pos++
	}
}

// best returns the first matching candidate. Candidates are already in
// priority order, so the first match has the highest priority and wins
// ties by table order. A silent rule may not end the word while nothing
// has been emitted, so a lone "e" is not dropped to an empty result.
func (e *Engine) best(word []rune, pos int, emitted bool) *compiledRule {
	for _, i := range e.index[word[pos]] {
		c := &e.rules[i]
		if !emitted && len(c.rule.Phonemes) == 0 && pos+len(c.pattern) == len(word) {
			continue
		}
		if c.matches(word, pos) {
			return c
		}
	}
	return nil
}

// RuleCount returns the number of rules.
func (e *Engine) RuleCount() int {
	return len(e.rules)
}

// IrregularCount returns the number of irregular words.
func (e *Engine) IrregularCount() int {
	return len(e.irregular)
}

// Rules returns the rules in match order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	for i, c := range e.rules {
		out[i] = c.rule
	}
	return out
}

// Source returns the name of the source the engine was built from.
func (e *Engine) Source() string {
	return e.source
}
