package export

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/g2p/internal/processor"
)

// SQLiteWriter stores each export as a run with its pronunciations.
// Repeated exports into the same database append new runs.
type SQLiteWriter struct {
	stats   processor.Stats
	records []Record
	now     func() time.Time
}

// NewSQLiteWriter creates a writer recording stats with every run
func NewSQLiteWriter(stats processor.Stats) *SQLiteWriter {
	return &SQLiteWriter{
		stats: stats,
		now:   time.Now,
	}
}

// AddRecord adds a record to the export
func (w *SQLiteWriter) AddRecord(r Record) {
	w.records = append(w.records, r)
}

// Write stores the records in the database at dbPath and returns the
// run id.
func (w *SQLiteWriter) Write(ctx context.Context, dbPath string) (string, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := createTables(ctx, db); err != nil {
		return "", fmt.Errorf("failed to create tables: %w", err)
	}

	runID := uuid.New().String()
	if err := w.insertRun(ctx, db, runID); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id           TEXT PRIMARY KEY,
			created_at   INTEGER NOT NULL,
			dict_entries INTEGER NOT NULL,
			rule_count   INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pronunciations (
			run_id   TEXT NOT NULL REFERENCES runs(id),
			word     TEXT NOT NULL,
			phonemes TEXT NOT NULL,
			ipa      TEXT NOT NULL,
			source   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_pronunciations_run ON pronunciations (run_id)`,
		`CREATE INDEX IF NOT EXISTS ix_pronunciations_word ON pronunciations (word)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func (w *SQLiteWriter) insertRun(ctx context.Context, db *sql.DB, runID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, dict_entries, rule_count) VALUES (?, ?, ?, ?)`,
		runID, w.now().Unix(), w.stats.DictEntries, w.stats.RuleCount,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pronunciations (run_id, word, phonemes, ipa, source) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range w.records {
		if _, err := stmt.ExecContext(ctx, runID, r.Word, r.Phonemes, r.IPA, r.Source); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r.Word, err)
		}
	}

	return tx.Commit()
}
