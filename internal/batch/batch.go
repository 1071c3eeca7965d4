package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/g2p/internal/processor"
)

// Entry is one line of a batch file
type Entry struct {
	Word string
	// Note is free text after "=" carried through to the output
	Note string
}

// Item is the conversion result for one entry
type Item struct {
	Entry  Entry
	Result processor.Result
}

// Converter converts a single word.
type Converter interface {
	Convert(word string) processor.Result
}

// ReadBatchFile reads words from a file and returns Entry slice
// Supports formats:
// - word only: "colonel"
// - with a note: "colonel = military rank"
// Blank lines and lines starting with "#" are skipped, as are lines
// with an empty word part.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, note, _ := strings.Cut(line, "=")
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		entries = append(entries, Entry{Word: word, Note: strings.TrimSpace(note)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}

// Convert converts entries with at most workers concurrent goroutines
// and returns the items in input order. workers <= 0 uses GOMAXPROCS.
// It fails only when ctx is cancelled.
func Convert(ctx context.Context, conv Converter, entries []Entry, workers int) ([]Item, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	items := make([]Item, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = Item{Entry: e, Result: conv.Convert(e.Word)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch conversion interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch conversion interrupted: %w", err)
	}
	return items, nil
}
