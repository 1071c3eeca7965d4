package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/g2p/internal/archive"
	"codeberg.org/snonux/g2p/internal/batch"
	"codeberg.org/snonux/g2p/internal/export"
	"codeberg.org/snonux/g2p/internal/phoneme"
	"codeberg.org/snonux/g2p/internal/processor"
	"codeberg.org/snonux/g2p/internal/reference"
	"codeberg.org/snonux/g2p/internal/rules"
)

// ErrNoInput is returned when there is nothing to convert or show.
var ErrNoInput = errors.New("no input: pass a word, text or --batch")

type tracer interface {
	Trace(word string) []rules.Step
}

// Runner executes one invocation of the command line tool
type Runner struct {
	flags    *Flags
	proc     *processor.Processor
	out      io.Writer
	log      *slog.Logger
	provider reference.Provider
}

// NewRunner loads the dictionary and rules named by flags
func NewRunner(flags *Flags, out io.Writer, log *slog.Logger) (*Runner, error) {
	if log == nil {
		log = slog.Default()
	}
	switch flags.Format {
	case "arpabet", "ipa", "both":
	default:
		return nil, fmt.Errorf("unknown output format: %s", flags.Format)
	}

	proc, err := processor.NewFromConfig(processor.Config{
		DictPath:  flags.DictPath,
		RulesPath: flags.RulesPath,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	return &Runner{
		flags: flags,
		proc:  proc,
		out:   out,
		log:   log,
	}, nil
}

// Run converts the arguments or the batch file and performs the
// requested export and comparison.
func (r *Runner) Run(ctx context.Context, args []string) error {
	showedInfo := false
	if r.flags.Stats {
		r.printStats()
		showedInfo = true
	}
	if r.flags.Sample > 0 {
		r.printSample(r.flags.Sample)
		showedInfo = true
	}

	var results []processor.Result
	var err error
	switch {
	case r.flags.BatchFile != "":
		results, err = r.processBatch(ctx)
	case len(args) == 0:
		if showedInfo {
			return nil
		}
		return ErrNoInput
	case len(args) == 1 && !r.flags.Text && r.isSingleWord(args[0]):
		results = []processor.Result{r.processSingleWord(args[0])}
	default:
		results = r.processText(strings.Join(args, " "))
	}
	if err != nil {
		return err
	}

	if r.flags.ExportPath != "" {
		if err := r.exportResults(ctx, results); err != nil {
			return err
		}
	}

	if r.flags.Compare {
		if err := r.compare(ctx, results); err != nil {
			return err
		}
	}

	return nil
}

// isSingleWord reports whether arg normalizes to at most one token.
func (r *Runner) isSingleWord(arg string) bool {
	return !strings.ContainsAny(arg, " \t\n") && len(r.proc.Tokens(arg)) <= 1
}

// processSingleWord normalizes arg the same way text is normalized, so
// "Hello!" finds the dictionary entry for "hello".
func (r *Runner) processSingleWord(arg string) processor.Result {
	word := arg
	if toks := r.proc.Tokens(arg); len(toks) == 1 {
		word = toks[0]
	}
	res := r.proc.Convert(word)
	fmt.Fprintf(r.out, "%s\t%s\t(%s)\n", word, r.render(res.Phonemes), res.Source)
	if r.flags.Trace && res.Source == processor.FromRules {
		r.printTrace(word)
	}
	return res
}

func (r *Runner) processText(text string) []processor.Result {
	fmt.Fprintln(r.out, r.render(r.proc.TextToPhonemes(text)))

	var results []processor.Result
	for _, tok := range r.proc.Tokens(text) {
		res := r.proc.Convert(tok)
		if r.flags.Trace {
			fmt.Fprintf(r.out, "%s\t%s\t(%s)\n", tok, r.render(res.Phonemes), res.Source)
			if res.Source == processor.FromRules {
				r.printTrace(tok)
			}
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) processBatch(ctx context.Context) ([]processor.Result, error) {
	entries, err := batch.ReadBatchFile(r.flags.BatchFile)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no words found in batch file")
	}

	r.log.Info("converting batch", "file", r.flags.BatchFile, "words", len(entries))
	items, err := batch.Convert(ctx, r.proc, entries, r.flags.Workers)
	if err != nil {
		return nil, err
	}

	results := make([]processor.Result, len(items))
	dict := 0
	for i, item := range items {
		line := fmt.Sprintf("%s\t%s\t(%s)", item.Entry.Word, r.render(item.Result.Phonemes), item.Result.Source)
		if item.Entry.Note != "" {
			line += "\t# " + item.Entry.Note
		}
		fmt.Fprintln(r.out, line)
		if item.Result.Source == processor.FromDictionary {
			dict++
		}
		results[i] = item.Result
	}

	fmt.Fprintf(r.out, "\nConverted %d words (%d from dictionary, %d from rules)\n",
		len(items), dict, len(items)-dict)
	return results, nil
}

func (r *Runner) printTrace(word string) {
	tr, ok := r.proc.RulesEngine().(tracer)
	if !ok {
		return
	}
	for _, step := range tr.Trace(word) {
		var how string
		switch {
		case step.Irregular:
			how = "irregular"
		case step.Rule != nil:
			how = "rule " + step.Rule.String()
		default:
			how = "fallback"
		}
		fmt.Fprintf(r.out, "  %2d +%d  %-12s %s\n", step.Pos, step.Consumed, phoneme.Join(step.Phonemes), how)
	}
}

func (r *Runner) printStats() {
	stats := r.proc.Stats()
	fmt.Fprintf(r.out, "Dictionary entries: %d\n", stats.DictEntries)
	fmt.Fprintf(r.out, "Rules: %d\n", stats.RuleCount)
}

func (r *Runner) printSample(n int) {
	for _, word := range r.proc.Sample(n) {
		fmt.Fprintf(r.out, "%s\t%s\n", word, r.render(r.proc.WordToPhonemes(word)))
	}
}

func (r *Runner) render(seq []phoneme.Phoneme) string {
	switch r.flags.Format {
	case "ipa":
		return phoneme.ToIPA(seq)
	case "both":
		return phoneme.Join(seq) + "\t" + phoneme.ToIPA(seq)
	default:
		return phoneme.Join(seq)
	}
}

func (r *Runner) exportResults(ctx context.Context, results []processor.Result) error {
	path := r.flags.ExportPath
	format, err := exportFormat(r.flags.ExportFormat, path)
	if err != nil {
		return err
	}

	if r.flags.Archive {
		archived, err := archive.Rotate(path)
		if err != nil {
			return err
		}
		if archived != "" {
			fmt.Fprintf(r.out, "Previous export archived to: %s\n", archived)
		}
	}

	switch format {
	case "csv":
		w := export.NewCSVWriter(&export.CSVOptions{OutputPath: path, IncludeHeaders: true})
		for _, res := range results {
			w.AddRecord(export.FromResult(res))
		}
		if err := w.Write(); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "CSV export created: %s\n", path)
	case "sqlite":
		w := export.NewSQLiteWriter(r.proc.Stats())
		for _, res := range results {
			w.AddRecord(export.FromResult(res))
		}
		runID, err := w.Write(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "SQLite export created: %s (run %s)\n", path, runID)
	}
	return nil
}

// exportFormat resolves "auto" from the file extension.
func exportFormat(format, path string) (string, error) {
	switch format {
	case "csv", "sqlite":
		return format, nil
	case "auto", "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite", ".sqlite3":
			return "sqlite", nil
		default:
			return "csv", nil
		}
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
}

func (r *Runner) compare(ctx context.Context, results []processor.Result) error {
	if r.provider == nil {
		p, err := reference.NewProvider(&reference.Config{
			Provider: r.flags.ReferenceProvider,
			Voice:    r.flags.ReferenceVoice,
			Fallback: true,
		})
		if err != nil {
			return err
		}
		r.provider = reference.NewCachedProvider(p)
	}
	if err := r.provider.IsAvailable(); err != nil {
		return fmt.Errorf("reference phonemizer unavailable: %w", err)
	}

	comparisons, err := reference.Compare(ctx, r.provider, results)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "\nReference: %s\n", r.provider.Name())
	for _, c := range comparisons {
		ref := c.Reference
		if c.Err != nil {
			r.log.Warn("reference failed", "word", c.Word, "error", c.Err)
			ref = "?"
		}
		fmt.Fprintf(r.out, "%s\t%s\t%s\n", c.Word, c.Phonemes, ref)
	}
	return nil
}
