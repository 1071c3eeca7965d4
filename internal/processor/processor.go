package processor

import (
	"fmt"
	"log/slog"

	"codeberg.org/snonux/g2p/internal/dict"
	"codeberg.org/snonux/g2p/internal/normalize"
	"codeberg.org/snonux/g2p/internal/phoneme"
	"codeberg.org/snonux/g2p/internal/rules"
)

// Lexicon is the exact-match pronunciation store.
type Lexicon interface {
	Lookup(word string) ([]phoneme.Phoneme, bool)
	Size() int
	Sample(n int) []string
}

// Rules derives pronunciations for words missing from the lexicon.
type Rules interface {
	Apply(word string) []phoneme.Phoneme
	RuleCount() int
}

// Origin tells which component produced a pronunciation.
type Origin string

const (
	FromDictionary Origin = "dictionary"
	FromRules      Origin = "rules"
)

// Result is the conversion of a single word.
type Result struct {
	Word     string
	Phonemes []phoneme.Phoneme
	Source   Origin
}

// Stats summarizes the loaded data.
type Stats struct {
	DictEntries int
	RuleCount   int
}

// Config selects the data sources for NewFromConfig.
type Config struct {
	DictPath  string // optional CMU lexicon
	RulesPath string // optional rule file, replaces the built-in rules
	Logger    *slog.Logger
}

// Processor converts words and text to phonemes. It holds no mutable
// state and is safe for concurrent use.
type Processor struct {
	lexicon    Lexicon
	rules      Rules
	normalizer normalize.Normalizer
}

// New creates a processor from its collaborators. A nil normalizer
// selects the English one.
func New(lexicon Lexicon, rules Rules, normalizer normalize.Normalizer) *Processor {
	if normalizer == nil {
		normalizer = normalize.NewEnglish()
	}
	return &Processor{
		lexicon:    lexicon,
		rules:      rules,
		normalizer: normalizer,
	}
}

// NewFromConfig loads the lexicon and rules described by cfg. Any load
// failure aborts construction.
func NewFromConfig(cfg Config) (*Processor, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	lexicon := dict.New(nil)
	if cfg.DictPath != "" {
		d, err := dict.Load(cfg.DictPath, dict.Options{Logger: log})
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary: %w", err)
		}
		lexicon = d
	}

	var src rules.Source = rules.Builtin()
	if cfg.RulesPath != "" {
		src = rules.File(cfg.RulesPath)
	}
	engine, err := rules.NewEngine(src)
	if err != nil {
		return nil, fmt.Errorf("failed to build rules engine: %w", err)
	}

	log.Info("converter ready",
		"dict_entries", lexicon.Size(),
		"rules", engine.RuleCount(),
		"irregular", engine.IrregularCount(),
		"rule_source", engine.Source(),
	)

	return New(lexicon, engine, nil), nil
}

// Convert converts one word, preferring the lexicon over the rules.
func (p *Processor) Convert(word string) Result {
	if seq, ok := p.lexicon.Lookup(word); ok {
		return Result{Word: word, Phonemes: seq, Source: FromDictionary}
	}
	return Result{Word: word, Phonemes: p.rules.Apply(word), Source: FromRules}
}

// WordToPhonemes converts one word.
func (p *Processor) WordToPhonemes(word string) []phoneme.Phoneme {
	return p.Convert(word).Phonemes
}

// Tokens returns the normalized word tokens of text.
func (p *Processor) Tokens(text string) []string {
	return p.normalizer.Tokenize(p.normalizer.Normalize(text))
}

// TextToPhonemes converts running text. Every token's phonemes are
// followed by one word boundary, including the last token's.
func (p *Processor) TextToPhonemes(text string) []phoneme.Phoneme {
	var out []phoneme.Phoneme
	for _, tok := range p.Tokens(text) {
		out = append(out, p.WordToPhonemes(tok)...)
		out = append(out, phoneme.WordBoundary())
	}
	return out
}

// Stats returns dictionary and rule counts.
func (p *Processor) Stats() Stats {
	return Stats{
		DictEntries: p.lexicon.Size(),
		RuleCount:   p.rules.RuleCount(),
	}
}

// Sample returns the n lexicographically smallest lexicon words.
func (p *Processor) Sample(n int) []string {
	return p.lexicon.Sample(n)
}

// RulesEngine returns the rules used on dictionary misses.
func (p *Processor) RulesEngine() Rules {
	return p.rules
}
