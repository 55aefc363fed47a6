package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/planetafiscal/docs-extractor/internal/textextract"
)

// ListSupported returns the processable documents directly under dir, in
// lexicographic filename order. Subdirectories and files whose extension has
// no registered reader are skipped; the directory is not walked recursively.
func ListSupported(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !textextract.Supported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
