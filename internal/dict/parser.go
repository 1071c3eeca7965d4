package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"codeberg.org/snonux/g2p/internal"
	"codeberg.org/snonux/g2p/internal/phoneme"
)

const (
	commentPrefix = ";;;"

	minLineLen     = 3
	maxLineLen     = 200
	maxWordLen     = 50
	maxPhonemesLen = 100

	progressEvery   = 10000
	warnRejections  = 10
	diagnosticWidth = 50
)

// Rejection reasons.
const (
	reasonLength      = "line length out of range"
	reasonNonASCII    = "non-ASCII characters"
	reasonNoLetter    = "no letters"
	reasonNoSeparator = "missing field separator"
	reasonWordField   = "invalid word field"
	reasonPhonemes    = "invalid phoneme field"
	reasonEmptyWord   = "empty word after normalization"
	reasonNoPhonemes  = "no valid phonemes"
)

// errSkipLine signals a blank or comment line.
var errSkipLine = errors.New("skip line")

type lineError struct {
	reason string
}

func (e *lineError) Error() string { return e.reason }

func reject(reason string) error {
	return &lineError{reason: reason}
}

type entry struct {
	word     string
	phonemes []phoneme.Phoneme
	dropped  []string
}

type parser struct {
	log        *slog.Logger
	limit      int
	entries    map[string][]phoneme.Phoneme
	stats      Stats
	rejections []Rejection
}

func (p *parser) run(r io.Reader) error {
	// Invalid UTF-8 becomes U+FFFD and such lines then fail the ASCII check.
	br := bufio.NewReader(transform.NewReader(r, textunicode.UTF8.NewDecoder()))

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			p.handle(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read lexicon: %w", err)
		}
	}
}

func (p *parser) handle(line string) {
	p.stats.TotalLines++
	n := p.stats.TotalLines

	e, err := parseLine(line)
	switch {
	case err == errSkipLine:
		if strings.TrimSpace(line) == "" {
			p.stats.BlankLines++
		} else {
			p.stats.CommentLines++
		}
	case err != nil:
		p.rejectLine(n, line, err.Error())
	default:
		for _, tok := range e.dropped {
			p.stats.DroppedTokens++
			p.log.Debug("dropped invalid phoneme", "line", n, "word", e.word, "token", tok)
		}
		p.stats.ValidLines++
		p.entries[e.word] = e.phonemes
	}

	if n%progressEvery == 0 {
		p.log.Info("lexicon progress",
			"lines", n,
			"valid", p.stats.ValidLines,
			"rejected", p.stats.RejectedLines,
		)
	}
}

func (p *parser) rejectLine(n int, line, reason string) {
	p.stats.RejectedLines++
	text := internal.Truncate(line, diagnosticWidth)

	if p.stats.RejectedLines <= warnRejections {
		p.log.Warn("skipping lexicon line", "line", n, "reason", reason, "text", text)
	} else {
		p.log.Debug("skipping lexicon line", "line", n, "reason", reason, "text", text)
	}

	if len(p.rejections) < p.limit {
		p.rejections = append(p.rejections, Rejection{Line: n, Text: text, Reason: reason})
	}
}

// parseLine turns one lexicon line into an entry.
func parseLine(line string) (entry, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
		return entry{}, errSkipLine
	}

	if len(trimmed) < minLineLen || len(trimmed) > maxLineLen {
		return entry{}, reject(reasonLength)
	}
	hasLetter := false
	for _, r := range trimmed {
		if r > unicode.MaxASCII && !unicode.IsSpace(r) {
			return entry{}, reject(reasonNonASCII)
		}
		if r <= unicode.MaxASCII && isLetter(byte(r)) {
			hasLetter = true
		}
	}
	if !hasLetter {
		return entry{}, reject(reasonNoLetter)
	}

	wordField, phonemeField, ok := splitFields(trimmed)
	if !ok {
		return entry{}, reject(reasonNoSeparator)
	}
	if !validWordField(wordField) {
		return entry{}, reject(reasonWordField)
	}
	if !validPhonemeField(phonemeField) {
		return entry{}, reject(reasonPhonemes)
	}

	word := normalizeWord(wordField)
	if word == "" {
		return entry{}, reject(reasonEmptyWord)
	}

	seq, dropped := parsePhonemes(phonemeField)
	if len(seq) == 0 {
		return entry{}, reject(reasonNoPhonemes)
	}

	return entry{word: word, phonemes: seq, dropped: dropped}, nil
}

// splitFields splits at the first tab or run of two or more spaces.
func splitFields(line string) (string, string, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] == '\t' || (line[i] == ' ' && i+1 < len(line) && line[i+1] == ' ') {
			word := strings.TrimSpace(line[:i])
			rest := strings.TrimSpace(line[i:])
			if word == "" || rest == "" {
				return "", "", false
			}
			return word, rest, true
		}
	}
	return "", "", false
}

func validWordField(s string) bool {
	if s == "" || len(s) > maxWordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !isDigit(c) && c != '\'' && c != '-' && c != '(' && c != ')' {
			return false
		}
	}
	return true
}

func validPhonemeField(s string) bool {
	if s == "" || len(s) > maxPhonemesLen {
		return false
	}
	hasLetter := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c):
			hasLetter = true
		case isDigit(c), c == ' ', c == '\t', c == '\v', c == '\f':
		default:
			return false
		}
	}
	return hasLetter
}

// normalizeWord strips a variant suffix like "(2)", lowercases and keeps
// only letters and apostrophes.
func normalizeWord(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if (c >= 'a' && c <= 'z') || c == '\'' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// parsePhonemes validates tokens against the inventory, retrying once
// with non-alphanumerics stripped. Unrecoverable tokens are returned
// as dropped.
func parsePhonemes(field string) ([]phoneme.Phoneme, []string) {
	var seq []phoneme.Phoneme
	var dropped []string
	for _, tok := range strings.Fields(field) {
		if phoneme.Valid(tok) {
			seq = append(seq, phoneme.New(tok))
			continue
		}
		if fixed := stripNonAlnum(tok); fixed != "" && phoneme.Valid(fixed) {
			seq = append(seq, phoneme.New(fixed))
			continue
		}
		dropped = append(dropped, tok)
	}
	return seq, dropped
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) || isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
