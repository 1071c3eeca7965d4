package reference

import (
	"context"

	"codeberg.org/snonux/g2p/internal/phoneme"
	"codeberg.org/snonux/g2p/internal/processor"
)

// Comparison pairs a conversion with the reference transcription
type Comparison struct {
	Word      string
	Phonemes  string
	Source    processor.Origin
	Reference string
	Err       error // reference failure for this word
}

// Compare asks p for every result's word. Provider failures are recorded
// per word; only cancellation of ctx aborts the run.
func Compare(ctx context.Context, p Provider, results []processor.Result) ([]Comparison, error) {
	out := make([]Comparison, 0, len(results))
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		ref, err := p.Phonemize(ctx, r.Word)
		out = append(out, Comparison{
			Word:      r.Word,
			Phonemes:  phoneme.Join(r.Phonemes),
			Source:    r.Source,
			Reference: ref,
			Err:       err,
		})
	}
	return out, nil
}
