// Package dict loads CMU-format pronunciation lexicons into an exact-match
// lookup table. Loading is lenient: malformed lines are counted and
// reported but never abort the load.
package dict

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"codeberg.org/snonux/g2p/internal"
	"codeberg.org/snonux/g2p/internal/phoneme"
)

// DefaultMaxRejections caps how many rejected lines are kept for inspection.
const DefaultMaxRejections = 100

// Options configures lexicon loading.
type Options struct {
	Logger        *slog.Logger
	MaxRejections int // 0 means DefaultMaxRejections, negative keeps none
}

// Stats holds loader statistics.
type Stats struct {
	TotalLines    int
	CommentLines  int
	BlankLines    int
	ValidLines    int
	RejectedLines int
	DroppedTokens int
	UniqueWords   int
}

// Rejection describes a lexicon line that contributed no entry.
type Rejection struct {
	Line   int
	Text   string
	Reason string
}

func (r Rejection) String() string {
	return fmt.Sprintf("line %d: %s: %q", r.Line, r.Reason, r.Text)
}

// Dictionary maps normalized words to pronunciations. It is read-only
// after construction and safe for concurrent use.
type Dictionary struct {
	entries    map[string][]phoneme.Phoneme
	stats      Stats
	rejections []Rejection
}

// New builds a dictionary from in-memory entries. Keys are lowercased.
func New(entries map[string][]phoneme.Phoneme) *Dictionary {
	d := &Dictionary{entries: make(map[string][]phoneme.Phoneme, len(entries))}
	for word, seq := range entries {
		d.entries[strings.ToLower(word)] = append([]phoneme.Phoneme(nil), seq...)
	}
	d.stats.UniqueWords = len(d.entries)
	return d
}

// Load reads a lexicon file.
func Load(path string, opts Options) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("lexicon %s: %w", path, internal.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer f.Close()

	logger(opts).Info("loading lexicon", "path", path)

	d, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return d, nil
}

// Parse reads a lexicon from r. It fails only on read errors or when no
// entry survives filtering.
func Parse(r io.Reader, opts Options) (*Dictionary, error) {
	log := logger(opts)
	limit := opts.MaxRejections
	if limit == 0 {
		limit = DefaultMaxRejections
	}

	p := &parser{
		log:     log,
		limit:   limit,
		entries: make(map[string][]phoneme.Phoneme),
	}
	if err := p.run(r); err != nil {
		return nil, err
	}

	p.stats.UniqueWords = len(p.entries)
	log.Info("lexicon loaded",
		"lines", p.stats.TotalLines,
		"valid", p.stats.ValidLines,
		"rejected", p.stats.RejectedLines,
		"dropped_tokens", p.stats.DroppedTokens,
		"words", p.stats.UniqueWords,
	)

	if len(p.entries) == 0 {
		return nil, internal.ErrSourceEmpty
	}

	return &Dictionary{
		entries:    p.entries,
		stats:      p.stats,
		rejections: p.rejections,
	}, nil
}

func logger(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.Default()
}

// Lookup returns the pronunciation of word, ignoring case.
func (d *Dictionary) Lookup(word string) ([]phoneme.Phoneme, bool) {
	seq, ok := d.entries[strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	return append([]phoneme.Phoneme(nil), seq...), true
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// IsEmpty reports whether the dictionary has no entries.
func (d *Dictionary) IsEmpty() bool {
	return len(d.entries) == 0
}

// Words returns all keys in lexicographic order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Sample returns the n lexicographically smallest keys.
func (d *Dictionary) Sample(n int) []string {
	if n <= 0 {
		return nil
	}
	words := d.Words()
	if n < len(words) {
		words = words[:n]
	}
	return words
}

// Stats returns the loader statistics.
func (d *Dictionary) Stats() Stats {
	return d.stats
}

// Rejections returns the stored line diagnostics.
func (d *Dictionary) Rejections() []Rejection {
	return append([]Rejection(nil), d.rejections...)
}
