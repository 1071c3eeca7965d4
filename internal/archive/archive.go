package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/g2p/internal"
)

// Dir is the archive directory created next to rotated files
const Dir = "archive"

var now = time.Now

// Rotate moves an existing export file to archive/<name>-<timestamp><ext>
// next to it and returns the new path. A missing file is not an error and
// yields an empty path.
func Rotate(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat export file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("export path is a directory: %s", path)
	}

	archiveDir := filepath.Join(filepath.Dir(path), Dir)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(path)
	name := internal.SanitizeFilename(strings.TrimSuffix(filepath.Base(path), ext))

	t := now()
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, t.Format("20060102-150405"), ext))

	// Archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, t.Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive export file: %w", err)
	}

	return archivePath, nil
}
