package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Lexicon is a small CMU-format lexicon used across package tests.
const Lexicon = `;;; test lexicon
CAT  K AE1 T
DOG  D AO1 G
HELLO  HH AH0 L OW1
READ  R IY1 D
READ(1)  R EH1 D
WORLD  W ER1 L D
`

// Rules is a small rule file used across package tests.
const Rules = `# test rules
ph|||F|10
c||e|S|5
e||_|-|4|word-end
!one|W AH1 N
`

// CreateTestDirectory creates a temporary directory structure for testing
func CreateTestDirectory(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()

	dirs := []string{
		"data",
		"output",
	}

	for _, dir := range dirs {
		path := filepath.Join(tempDir, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatalf("Failed to create test directory %s: %v", path, err)
		}
	}

	return tempDir
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteLexicon writes the shared test lexicon below dir and returns its path.
func WriteLexicon(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "data", "test.dict")
	CreateTestFile(t, path, []byte(Lexicon))
	return path
}

// WriteRules writes the shared rule file below dir and returns its path.
func WriteRules(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "data", "test.rules")
	CreateTestFile(t, path, []byte(Rules))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// CaptureOutput captures stdout during test execution
func CaptureOutput(t *testing.T, f func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var b strings.Builder
		buf := make([]byte, 4096)
		for {
			n, err := r.Read(buf)
			b.Write(buf[:n])
			if err != nil {
				break
			}
		}
		done <- []byte(b.String())
	}()

	f()

	w.Close()
	os.Stdout = old
	return string(<-done)
}
