// Package export writes conversion results to CSV files and SQLite
// databases.
package export

import (
	"codeberg.org/snonux/g2p/internal/phoneme"
	"codeberg.org/snonux/g2p/internal/processor"
)

// Record is one exported pronunciation
type Record struct {
	Word     string // The word as given
	Phonemes string // Space separated ARPAbet
	IPA      string // IPA transcription
	Source   string // dictionary or rules
}

// FromResult converts a conversion result into a record
func FromResult(r processor.Result) Record {
	return Record{
		Word:     r.Word,
		Phonemes: phoneme.Join(r.Phonemes),
		IPA:      phoneme.ToIPA(r.Phonemes),
		Source:   string(r.Source),
	}
}

// CSVHeader is the header row of CSV exports
var CSVHeader = []string{"word", "phonemes", "ipa", "source"}
