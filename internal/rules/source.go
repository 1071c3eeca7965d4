package rules

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"codeberg.org/snonux/g2p/internal"
	"codeberg.org/snonux/g2p/internal/phoneme"
)

const (
	commentPrefix   = "#"
	irregularPrefix = "!"
)

// Table is the raw content of a rule source.
type Table struct {
	Rules     []Rule
	Irregular map[string][]phoneme.Phoneme
}

// Source provides a rule table to NewEngine.
type Source interface {
	// Load returns the rules and irregular words of the source.
	Load() (Table, error)

	// Name identifies the source in logs and errors.
	Name() string
}

// BuiltinSource serves the compiled-in English rule table.
type BuiltinSource struct{}

// Builtin returns the built-in rule source.
func Builtin() BuiltinSource {
	return BuiltinSource{}
}

// Load returns a fresh copy of the built-in table.
func (BuiltinSource) Load() (Table, error) {
	return builtinTable(), nil
}

// Name returns the source name
func (BuiltinSource) Name() string {
	return "builtin"
}

// FileSource reads rules from a rule file. File rules replace the
// built-in table entirely.
type FileSource struct {
	Path string
}

// File returns a file-backed rule source.
func File(path string) FileSource {
	return FileSource{Path: path}
}

// Load parses the rule file.
func (s FileSource) Load() (Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, fmt.Errorf("rule file %s: %w", s.Path, internal.ErrSourceNotFound)
		}
		return Table{}, fmt.Errorf("failed to open rule file: %w", err)
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return Table{}, fmt.Errorf("rule file %s: %w", s.Path, err)
	}
	return t, nil
}

// Name returns the file path
func (s FileSource) Name() string {
	return s.Path
}

// ParseError reports a malformed rule directive.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseTable reads rule directives, one per line. Blank lines and lines
// starting with # are ignored.
//
//	pattern|left|right|phonemes|priority[|conditions]
//	!word|phonemes
func ParseTable(r io.Reader) (Table, error) {
	t := Table{Irregular: make(map[string][]phoneme.Phoneme)}

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if strings.HasPrefix(line, irregularPrefix) {
			word, seq, err := parseIrregular(strings.TrimPrefix(line, irregularPrefix))
			if err != nil {
				return Table{}, &ParseError{Line: n, Text: line, Err: err}
			}
			t.Irregular[word] = seq
			continue
		}

		rule, err := parseRule(line)
		if err != nil {
			return Table{}, &ParseError{Line: n, Text: line, Err: err}
		}
		t.Rules = append(t.Rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return Table{}, fmt.Errorf("failed to read rules: %w", err)
	}
	return t, nil
}

func parseRule(line string) (Rule, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 5 && len(fields) != 6 {
		return Rule{}, fmt.Errorf("expected 5 or 6 fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	rule := Rule{
		Pattern: strings.ToLower(fields[0]),
		Left:    strings.ToLower(fields[1]),
		Right:   strings.ToLower(fields[2]),
	}
	if rule.Pattern == "" {
		return Rule{}, errors.New("empty pattern")
	}

	seq, err := parsePhonemeList(fields[3], true)
	if err != nil {
		return Rule{}, err
	}
	rule.Phonemes = seq

	rule.Priority, err = strconv.Atoi(fields[4])
	if err != nil {
		return Rule{}, fmt.Errorf("invalid priority %q", fields[4])
	}

	if len(fields) == 6 && fields[5] != "" {
		for _, name := range strings.Split(fields[5], ",") {
			c, err := ParseCondition(name)
			if err != nil {
				return Rule{}, err
			}
			rule.Conditions = append(rule.Conditions, c)
		}
	}
	return rule, nil
}

func parseIrregular(s string) (string, []phoneme.Phoneme, error) {
	word, list, ok := strings.Cut(s, "|")
	if !ok {
		return "", nil, errors.New("irregular directive needs word|phonemes")
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", nil, errors.New("empty irregular word")
	}
	seq, err := parsePhonemeList(list, false)
	if err != nil {
		return "", nil, err
	}
	return word, seq, nil
}

func parsePhonemeList(s string, allowSilent bool) ([]phoneme.Phoneme, error) {
	s = strings.TrimSpace(s)
	if s == Silent {
		if !allowSilent {
			return nil, errors.New("silent placeholder not allowed here")
		}
		return nil, nil
	}
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil, errors.New("empty phoneme list")
	}
	for _, tok := range tokens {
		if !phoneme.Valid(tok) {
			return nil, fmt.Errorf("unknown phoneme %q", tok)
		}
	}
	return phoneme.Parse(tokens), nil
}
