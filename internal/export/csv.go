package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVOptions configures the CSV export
type CSVOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultCSVOptions returns sensible defaults
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		OutputPath:     "pronunciations.csv",
		IncludeHeaders: true,
	}
}

// CSVWriter collects records and writes them as CSV
type CSVWriter struct {
	options *CSVOptions
	records []Record
}

// NewCSVWriter creates a new CSV writer
func NewCSVWriter(options *CSVOptions) *CSVWriter {
	if options == nil {
		options = DefaultCSVOptions()
	}
	return &CSVWriter{
		options: options,
		records: make([]Record, 0),
	}
}

// AddRecord adds a record to the export
func (w *CSVWriter) AddRecord(r Record) {
	w.records = append(w.records, r)
}

// Records returns the collected records
func (w *CSVWriter) Records() []Record {
	return w.records
}

// Write creates the CSV file
func (w *CSVWriter) Write() error {
	file, err := os.Create(w.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if w.options.IncludeHeaders {
		if err := writer.Write(CSVHeader); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, r := range w.records {
		record := []string{r.Word, r.Phonemes, r.IPA, r.Source}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
