package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedNow(t *testing.T) {
	t.Helper()
	old := now
	now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 123456000, time.UTC) }
	t.Cleanup(func() { now = old })
}

func TestRotate(t *testing.T) {
	fixedNow(t)
	tmpDir := t.TempDir()

	exportFile := filepath.Join(tmpDir, "words.csv")
	if err := os.WriteFile(exportFile, []byte("word,phonemes,ipa,source\n"), 0644); err != nil {
		t.Fatalf("Failed to create export file: %v", err)
	}

	archived, err := Rotate(exportFile)
	if err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}

	want := filepath.Join(tmpDir, "archive", "words-20240301-123045.csv")
	if archived != want {
		t.Errorf("Rotate() = %q, want %q", archived, want)
	}

	if _, err := os.Stat(exportFile); !os.IsNotExist(err) {
		t.Error("Export file still exists after rotation")
	}

	content, err := os.ReadFile(archived)
	if err != nil {
		t.Fatalf("Failed to read archived file: %v", err)
	}
	if !strings.HasPrefix(string(content), "word,") {
		t.Errorf("Archived content mismatch: %q", content)
	}
}

func TestRotateNonExistent(t *testing.T) {
	archived, err := Rotate(filepath.Join(t.TempDir(), "missing.db"))
	if err != nil {
		t.Errorf("Rotate on missing file returned error: %v", err)
	}
	if archived != "" {
		t.Errorf("Expected empty path, got %q", archived)
	}
}

func TestRotateDirectory(t *testing.T) {
	if _, err := Rotate(t.TempDir()); err == nil {
		t.Error("Expected error when rotating a directory")
	}
}

func TestRotateTwiceSameSecond(t *testing.T) {
	fixedNow(t)
	tmpDir := t.TempDir()
	exportFile := filepath.Join(tmpDir, "out.db")

	var paths []string
	for i := 0; i < 2; i++ {
		if err := os.WriteFile(exportFile, []byte("data"), 0644); err != nil {
			t.Fatalf("Failed to create export file: %v", err)
		}
		p, err := Rotate(exportFile)
		if err != nil {
			t.Fatalf("Rotate %d failed: %v", i, err)
		}
		paths = append(paths, p)
	}

	if paths[0] == paths[1] {
		t.Fatalf("Expected distinct archive paths, got %q twice", paths[0])
	}
	if !strings.HasSuffix(paths[1], "-20240301-123045.123456.db") {
		t.Errorf("Unexpected fallback name: %s", paths[1])
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 archived files, got %d", len(entries))
	}
}

func TestRotateSanitizesName(t *testing.T) {
	fixedNow(t)
	tmpDir := t.TempDir()
	exportFile := filepath.Join(tmpDir, "my words.csv")
	if err := os.WriteFile(exportFile, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create export file: %v", err)
	}

	archived, err := Rotate(exportFile)
	if err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	if filepath.Base(archived) != "my_words-20240301-123045.csv" {
		t.Errorf("Unexpected archive name: %s", filepath.Base(archived))
	}
}
